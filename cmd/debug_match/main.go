package main

import (
	"encoding/json"
	"fmt"
	"log"

	"invoice-verifier/core/config"
	"invoice-verifier/core/verify"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	excel := []verify.LineItem{
		{
			Quantity:    verify.AmountFromFloat(10),
			NetWeight:   verify.AmountFromFloat(1),
			Description: "Collectors Note 1990",
			HSCode:      "970531",
			CountryCode: "GB",
			Year:        1990,
			UnitValue:   verify.AmountFromFloat(5),
			TotalValue:  verify.AmountFromFloat(50),
		},
		{
			Quantity:    verify.AmountFromFloat(3),
			NetWeight:   verify.AmountFromFloat(0.4),
			Description: "Collectors Coin 1971",
			HSCode:      "970531",
			CountryCode: "DE",
			Year:        1971,
			UnitValue:   verify.AmountFromFloat(12),
			TotalValue:  verify.AmountFromFloat(36),
		},
	}

	pdf := []verify.LineItem{
		{
			Quantity:    verify.AmountFromFloat(10),
			NetWeight:   verify.AmountFromFloat(1),
			Description: "COLLECTORS NOTE 1990 GB",
			HSCode:      "970531",
			CountryCode: "GB",
			Year:        1990,
			UnitValue:   verify.AmountFromFloat(5),
			TotalValue:  verify.AmountFromFloat(50),
		},
		{
			Quantity:    verify.AmountFromFloat(3),
			NetWeight:   verify.AmountFromFloat(0.4),
			Description: "COLLECTORS COIN 1971 DE",
			HSCode:      "970531",
			CountryCode: "DE",
			Year:        1971,
			UnitValue:   verify.AmountFromFloat(12),
			TotalValue:  verify.AmountFromFloat(40), // Deliberate mismatch
		},
	}

	fmt.Println("=== TEST 1: Matching ===")
	summary := verify.Match(excel, pdf, cfg.Verify)
	fmt.Printf("Perfect matches: %d\n", summary.PerfectMatches)
	fmt.Printf("Partial matches: %d\n", len(summary.Partials))
	fmt.Printf("Clean run: %v\n", summary.Clean())

	fmt.Println("\n=== TEST 2: Partial detail ===")
	for i, p := range summary.Partials {
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Partial #%d (score %d):\n%s\n", i+1, p.Score, out)
	}
}
