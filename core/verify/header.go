package verify

// Header field names used in checks and reports.
const (
	FieldContactName = "contact_name"
	FieldPurpose     = "purpose_of_shipment"
)

// CheckHeaders verifies the extracted header metadata against the configured
// constants. Comparison is exact string equality with no trimming: a trailing
// space fails. The carrier invoice is the deciding observation for both
// fields; the spreadsheet contact is recorded for the report only.
func CheckHeaders(excel, pdf HeaderInfo, cfg Config) []HeaderCheck {
	return []HeaderCheck{
		{
			Field:      FieldContactName,
			Required:   cfg.ExpectedContact,
			ExcelValue: excel.ContactName,
			PDFValue:   pdf.ContactName,
			Pass:       pdf.ContactName == cfg.ExpectedContact,
		},
		{
			Field:    FieldPurpose,
			Required: cfg.ExpectedPurpose,
			PDFValue: pdf.Purpose,
			Pass:     pdf.Purpose == cfg.ExpectedPurpose,
		},
	}
}

// HeadersPass reports whether every header check passed.
func HeadersPass(checks []HeaderCheck) bool {
	for _, c := range checks {
		if !c.Pass {
			return false
		}
	}
	return true
}
