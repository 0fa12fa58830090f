package verify

import "github.com/shopspring/decimal"

// Config holds configuration for the verification core.
type Config struct {
	// ExpectedContact is the accepted shipper contact string, compared exactly.
	ExpectedContact string `mapstructure:"expected_contact" default:"SB-SHIPPING - PRN 5789187"`
	// ExpectedPurpose is the accepted purpose-of-shipment string, compared exactly.
	ExpectedPurpose string `mapstructure:"expected_purpose" default:"SB-SHIPPING - REPAIR_AND_RETURN"`
	// Tolerance is the absolute numeric tolerance for value comparisons.
	Tolerance string `mapstructure:"tolerance" default:"0.01"`
	// MinPartialScore is the minimum agreeing fields (of 8) for a partial match.
	MinPartialScore int `mapstructure:"min_partial_score" default:"4"`
}

// FieldCount is the number of compared fields per line item.
const FieldCount = 8

var defaultTolerance = decimal.NewFromFloat(0.01)

// ToleranceDecimal parses the configured tolerance, falling back to 0.01.
func (c Config) ToleranceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(c.Tolerance)
	if err != nil || !d.IsPositive() {
		return defaultTolerance
	}
	return d
}

// PartialThreshold returns the partial-match score floor clamped to [1, FieldCount].
func (c Config) PartialThreshold() int {
	if c.MinPartialScore < 1 || c.MinPartialScore > FieldCount {
		return 4
	}
	return c.MinPartialScore
}
