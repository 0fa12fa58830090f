package verify

import "strings"

// LineItem is one declared article within a shipment. Quantity and
// Description are required for the record to take part in matching; every
// other field may be absent. Absent string fields are "", an absent year is 0.
type LineItem struct {
	// Quantity is the declared piece count.
	Quantity Amount `json:"quantity"`

	// NetWeight is the declared net weight in kilograms.
	NetWeight Amount `json:"net_weight"`

	// Description is the free-text article description.
	Description string `json:"description"`

	// HSCode is the 6-digit Harmonized System tariff code, dots stripped.
	HSCode string `json:"hs_code"`

	// CountryCode is the 2-letter country of origin.
	CountryCode string `json:"country_code"`

	// Year is the article year (e.g. coin minting year). Zero means unknown.
	Year int `json:"year"`

	// UnitValue is the per-piece value in USD. Derived as total/quantity on
	// the spreadsheet side, taken literally from the invoice side.
	UnitValue Amount `json:"unit_value"`

	// TotalValue is the line total in USD.
	TotalValue Amount `json:"total_value"`
}

// Valid reports whether the record carries the fields required for matching.
func (it LineItem) Valid() bool {
	return it.Quantity.Known() && strings.TrimSpace(it.Description) != ""
}

// HeaderInfo is the per-source declaration header metadata.
type HeaderInfo struct {
	// ContactName is the shipper contact string, "" when not found.
	ContactName string `json:"contact_name"`

	// Purpose is the purpose-of-shipment string, "" when not found.
	Purpose string `json:"purpose_of_shipment"`
}

// FieldDiff is the per-field agreement vector for one candidate pairing.
type FieldDiff struct {
	Quantity    bool `json:"quantity"`
	NetWeight   bool `json:"net_weight"`
	Description bool `json:"description"`
	HSCode      bool `json:"hs_code"`
	CountryCode bool `json:"country_code"`
	Year        bool `json:"year"`
	UnitValue   bool `json:"unit_value"`
	TotalValue  bool `json:"total_value"`
}

// Score returns the number of agreeing fields, 0 to FieldCount.
func (d FieldDiff) Score() int {
	score := 0
	for _, ok := range [FieldCount]bool{
		d.Quantity, d.NetWeight, d.Description, d.HSCode,
		d.CountryCode, d.Year, d.UnitValue, d.TotalValue,
	} {
		if ok {
			score++
		}
	}
	return score
}

// PartialMatch pairs a spreadsheet item with its best invoice candidate when
// they agree on some but not all fields.
type PartialMatch struct {
	// Excel is the spreadsheet-side record.
	Excel LineItem `json:"excel_item"`

	// PDF is the invoice-side record.
	PDF LineItem `json:"pdf_item"`

	// Diff marks which fields agreed.
	Diff FieldDiff `json:"differences"`

	// Score is the number of agreeing fields (threshold..FieldCount-1).
	Score int `json:"match_score"`
}

// Summary is the aggregate outcome of one matching run. It is built once per
// verification, never mutated afterwards, and holds no cross-run state.
type Summary struct {
	// TotalExcel is the number of valid spreadsheet records.
	TotalExcel int `json:"total_excel"`

	// TotalPDF is the number of valid invoice records.
	TotalPDF int `json:"total_pdf"`

	// PerfectMatches counts pairings agreeing on all fields.
	PerfectMatches int `json:"perfect_matches"`

	// Partials lists partial matches in spreadsheet order.
	Partials []PartialMatch `json:"mismatches"`

	// UnmatchedExcel lists spreadsheet records with no acceptable candidate,
	// in original order.
	UnmatchedExcel []LineItem `json:"unmatched_excel"`

	// UnmatchedPDF lists invoice records never claimed, in original order.
	UnmatchedPDF []LineItem `json:"unmatched_pdf"`
}

// Clean reports whether every record on both sides found a perfect match.
func (s Summary) Clean() bool {
	return s.PerfectMatches == s.TotalExcel &&
		len(s.Partials) == 0 &&
		len(s.UnmatchedExcel) == 0 &&
		len(s.UnmatchedPDF) == 0
}

// HeaderCheck is the verdict for one header field.
type HeaderCheck struct {
	// Field names the checked header field.
	Field string `json:"field"`

	// Required is the literal accepted value.
	Required string `json:"required"`

	// ExcelValue is the spreadsheet-side observation, "" when absent or
	// not applicable for the field.
	ExcelValue string `json:"excel_value,omitempty"`

	// PDFValue is the invoice-side observation.
	PDFValue string `json:"pdf_value"`

	// Pass is true when the deciding observation equals Required exactly.
	Pass bool `json:"pass"`
}
