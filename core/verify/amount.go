package verify

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type amountKind uint8

const (
	amountUnknown amountKind = iota
	amountNumeric
	amountText
)

// Amount is a tagged optional numeric value. An absent value is Unknown,
// which is distinct from a numeric zero. Source cells that fail numeric
// parsing are kept as Text and compared by exact string equality.
type Amount struct {
	kind amountKind
	dec  decimal.Decimal
	raw  string
}

// UnknownAmount returns the absent value.
func UnknownAmount() Amount {
	return Amount{}
}

// AmountFromDecimal wraps a known numeric value.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{kind: amountNumeric, dec: d}
}

// AmountFromFloat wraps a known numeric value.
func AmountFromFloat(f float64) Amount {
	return Amount{kind: amountNumeric, dec: decimal.NewFromFloat(f)}
}

// ParseAmount converts raw cell text into an Amount. Currency symbols and
// thousands separators are stripped before parsing; text that still fails to
// parse is kept verbatim for string comparison. Empty input is Unknown.
func ParseAmount(s string) Amount {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return UnknownAmount()
	}

	cleaned := strings.TrimPrefix(trimmed, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if d, err := decimal.NewFromString(cleaned); err == nil {
		return AmountFromDecimal(d)
	}

	return Amount{kind: amountText, raw: trimmed}
}

// Known reports whether the amount carries a value (numeric or text).
func (a Amount) Known() bool {
	return a.kind != amountUnknown
}

// Numeric reports whether the amount carries a parsed decimal value.
func (a Amount) Numeric() bool {
	return a.kind == amountNumeric
}

// Decimal returns the numeric value; ok is false for Unknown and Text amounts.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	return a.dec, a.kind == amountNumeric
}

// String renders the amount for reports. Unknown renders as "n/a".
func (a Amount) String() string {
	switch a.kind {
	case amountNumeric:
		return a.dec.String()
	case amountText:
		return a.raw
	default:
		return "n/a"
	}
}

// MarshalJSON renders Unknown as null, numeric values as JSON numbers and
// text values as strings.
func (a Amount) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case amountNumeric:
		return []byte(a.dec.String()), nil
	case amountText:
		return json.Marshal(a.raw)
	default:
		return []byte("null"), nil
	}
}
