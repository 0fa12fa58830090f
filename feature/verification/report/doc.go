// Package report renders verification outcomes into a deterministic
// plain-text document: header verification sections, line-item counters, one
// block per partial match with a per-field comparison, one block per
// unmatched item on each side, and a final pass/fail banner.
//
// Render never consults the clock, locale, or any other ambient state, so
// identical inputs always produce byte-identical output.
package report
