package main

import "invoice-verifier/cmd"

func main() {
	cmd.Execute()
}
