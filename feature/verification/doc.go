// Package verification wires the extraction, matching and reporting
// pipeline into a runnable service with an HTTP surface: one verification
// endpoint plus a small lifecycle API for the archived text reports.
package verification
