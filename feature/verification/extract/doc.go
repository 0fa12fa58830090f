// Package extract pulls normalized line items and header metadata out of the
// two source documents: the shipper's Excel declaration and the carrier's PDF
// commercial invoice.
//
// The two extractors are independent pure functions of their inputs and share
// no state. Both skip records that lack the fields required for matching
// instead of failing the run; only a completely unreadable source is an error.
//
// The Excel side consumes a positionally addressed grid: a fixed contact
// cell, an item range opened by the "Rank" header row and closed by the
// "Total" row, and a fixed column map. The PDF side scrapes concatenated page
// text with a fixed line grammar
// (quantity weight PCS description hs-code country unit-value total-value,
// plus continuation lines for wrapped descriptions). The grammar is fragile
// and deliberately preserved as-is; it is not a general invoice parser.
package extract
