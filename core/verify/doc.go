// Package verify contains the line-item reconciliation core.
//
// It compares two independently extracted views of the same shipment
// declaration (the shipper's spreadsheet and the carrier's commercial
// invoice) and partitions every line item into perfect matches, partial
// matches, or unmatched leftovers.
//
// # Matching
//
// The matcher is a greedy, order-preserving single pass over the spreadsheet
// items. For each item it scans the unclaimed invoice items in original
// order and scores an 8-field agreement vector (quantity, net weight,
// description, HS code, country code, year, unit value, total value). A full
// score of 8 is accepted immediately as a perfect match; otherwise the
// highest-scoring candidate at or above the partial threshold (default 4) is
// recorded as a partial match with its per-field diff. Ties keep the first
// candidate encountered, so the result is a pure function of input order.
//
// The greedy first-perfect-wins assignment is deliberate: it reproduces the
// behavior downstream consumers depend on, including its order dependence.
// It is not a globally optimal bipartite matching and must not be replaced
// with one.
//
// # Field comparison
//
// Extraction is noisy, so comparisons are tolerant where that noise is
// legitimate: numeric fields compare under a fixed absolute tolerance
// (default 0.01, chosen to absorb unit-value division rounding),
// descriptions match on normalized substring containment, while HS and
// country codes require exact equality after trimming. An absent value is
// Unknown, which is never the same thing as zero; two Unknowns agree, an
// Unknown never agrees with a known value.
package verify
