package verify

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeText trims, lowercases and collapses internal whitespace runs to a
// single space. An absent value normalizes to "".
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ValuesEqual compares two amounts under the given absolute tolerance.
// Two unknowns are equal; an unknown never equals a known value. When both
// values are numeric they are equal iff |a-b| < tol. Any non-numeric operand
// degrades the comparison to exact string equality.
func ValuesEqual(a, b Amount, tol decimal.Decimal) bool {
	if !a.Known() && !b.Known() {
		return true
	}
	if !a.Known() || !b.Known() {
		return false
	}

	da, aNum := a.Decimal()
	db, bNum := b.Decimal()
	if aNum && bNum {
		return da.Sub(db).Abs().LessThan(tol)
	}

	return a.String() == b.String()
}

// DescriptionsMatch reports whether either normalized description contains
// the other. Containment handles one source truncating or expanding the
// wording of the same article.
func DescriptionsMatch(a, b string) bool {
	na := NormalizeText(a)
	nb := NormalizeText(b)
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}

// codesEqual compares code fields (HS code, country code): exact string
// equality after trimming, no fuzzy matching. Two absent codes are equal.
func codesEqual(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
