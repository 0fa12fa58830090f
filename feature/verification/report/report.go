package report

import (
	"fmt"
	"strings"

	"invoice-verifier/core/verify"
)

const (
	heavyRule = "===================================================================================================="
	lightRule = "----------------------------------------------------------------------------------------------------"

	// descLimit truncates long descriptions inside item blocks.
	descLimit = 80
)

// Render produces the plain-text verification report. The output is a pure
// function of its arguments: identical inputs yield byte-identical reports.
// The generatedAt line is supplied by the caller so the formatter itself
// stays deterministic.
func Render(checks []verify.HeaderCheck, summary verify.Summary, generatedAt string) string {
	var b strings.Builder

	writeHeading(&b, generatedAt)
	writeHeaderChecks(&b, checks)
	writeCounters(&b, summary)
	writePartials(&b, summary.Partials)
	writeUnmatched(&b, "YOUR EXCEL", "FEDEX PDF", "Excel", summary.UnmatchedExcel)
	writeUnmatched(&b, "FEDEX PDF", "YOUR EXCEL", "FedEx PDF", summary.UnmatchedPDF)
	writeVerdict(&b, checks, summary)

	return b.String()
}

func writeHeading(b *strings.Builder, generatedAt string) {
	line(b, heavyRule)
	line(b, "SHIPMENT DECLARATION VERIFICATION REPORT")
	line(b, "Checking: Quantity | Net Weight | Description | HS Code | Country | Year | Unit Value | Total Value")
	line(b, heavyRule)
	line(b, "Generated: "+generatedAt)
	line(b, "")
}

func writeHeaderChecks(b *strings.Builder, checks []verify.HeaderCheck) {
	for i, check := range checks {
		line(b, lightRule)
		line(b, fmt.Sprintf("%d. %s VERIFICATION", i+1, strings.ToUpper(strings.ReplaceAll(check.Field, "_", " "))))
		line(b, lightRule)
		line(b, "Required: "+check.Required)
		if check.Field == verify.FieldContactName {
			line(b, "Your Excel: "+orNone(check.ExcelValue))
		}
		line(b, "FedEx PDF:  "+orNone(check.PDFValue))
		line(b, "Result: "+passFail(check.Pass))
		line(b, "")
	}
}

func writeCounters(b *strings.Builder, s verify.Summary) {
	line(b, lightRule)
	line(b, "3. LINE ITEMS VERIFICATION - ALL 8 FIELDS")
	line(b, lightRule)
	line(b, fmt.Sprintf("Total in Excel:      %d", s.TotalExcel))
	line(b, fmt.Sprintf("Total in PDF:        %d", s.TotalPDF))
	line(b, fmt.Sprintf("Perfect Matches:     %d", s.PerfectMatches))
	line(b, fmt.Sprintf("Partial Matches:     %d", len(s.Partials)))
	line(b, fmt.Sprintf("Excel Only:          %d", len(s.UnmatchedExcel)))
	line(b, fmt.Sprintf("PDF Only:            %d", len(s.UnmatchedPDF)))
	line(b, "")
}

func writePartials(b *strings.Builder, partials []verify.PartialMatch) {
	if len(partials) == 0 {
		return
	}

	line(b, heavyRule)
	line(b, "ITEMS WITH DISCREPANCIES (PARTIAL MATCHES)")
	line(b, heavyRule)
	line(b, "")

	for i, p := range partials {
		line(b, fmt.Sprintf("Discrepancy #%d - Match Score: %d/%d", i+1, p.Score, verify.FieldCount))
		line(b, lightRule)
		line(b, "YOUR EXCEL:")
		writeItemFields(b, p.Excel)
		line(b, "")
		line(b, "FEDEX PDF:")
		writeItemFields(b, p.PDF)
		line(b, "")
		line(b, "FIELD-BY-FIELD COMPARISON:")
		line(b, "  Quantity:     "+matchMark(p.Diff.Quantity))
		line(b, "  Net Weight:   "+matchMark(p.Diff.NetWeight))
		line(b, "  Description:  "+matchMark(p.Diff.Description))
		line(b, "  HS Code:      "+matchMark(p.Diff.HSCode))
		line(b, "  Country:      "+matchMark(p.Diff.CountryCode))
		line(b, "  Year:         "+matchMark(p.Diff.Year))
		line(b, "  Unit Value:   "+matchMark(p.Diff.UnitValue))
		line(b, "  Total Value:  "+matchMark(p.Diff.TotalValue))
		line(b, "")
	}
}

func writeUnmatched(b *strings.Builder, side, otherSide, itemLabel string, items []verify.LineItem) {
	if len(items) == 0 {
		return
	}

	line(b, heavyRule)
	line(b, fmt.Sprintf("ITEMS ONLY IN %s (%d items - NOT FOUND IN %s)", side, len(items), otherSide))
	line(b, heavyRule)
	line(b, "")

	for i, item := range items {
		line(b, fmt.Sprintf("%s Item #%d:", itemLabel, i+1))
		writeItemFields(b, item)
		line(b, "")
	}
}

func writeItemFields(b *strings.Builder, item verify.LineItem) {
	line(b, "  Quantity:     "+item.Quantity.String())
	line(b, "  Net Weight:   "+item.NetWeight.String()+" kg")
	line(b, "  Description:  "+truncate(item.Description, descLimit))
	line(b, "  HS Code:      "+orNone(item.HSCode))
	line(b, "  Country:      "+orNone(item.CountryCode))
	line(b, "  Year:         "+yearString(item.Year))
	line(b, "  Unit Value:   $"+item.UnitValue.String())
	line(b, "  Total Value:  $"+item.TotalValue.String())
}

func writeVerdict(b *strings.Builder, checks []verify.HeaderCheck, s verify.Summary) {
	line(b, heavyRule)
	line(b, "FINAL VERIFICATION SUMMARY")
	line(b, heavyRule)

	for _, check := range checks {
		line(b, fmt.Sprintf("%-21s%s", checkLabel(check.Field)+":", passFail(check.Pass)))
	}

	itemsOK := s.Clean()
	if itemsOK {
		line(b, fmt.Sprintf("%-21s%s", "All Line Items:", "PASS - All 8 fields match perfectly"))
	} else {
		line(b, fmt.Sprintf("%-21s%s", "All Line Items:", "FAIL - See discrepancies above"))
	}
	line(b, fmt.Sprintf("%-21s%d/%d", "Perfect Matches:", s.PerfectMatches, s.TotalExcel))
	line(b, "")

	if verify.HeadersPass(checks) && itemsOK {
		line(b, "*** ALL VERIFICATION CHECKS PASSED ***")
		line(b, "The declaration matches the carrier invoice on all 8 fields.")
	} else {
		line(b, "*** VERIFICATION FAILED - DISCREPANCIES FOUND ***")
		line(b, "Review the detailed discrepancies above.")
	}
	line(b, "")
}

func line(b *strings.Builder, s string) {
	b.WriteString(s)
	b.WriteString("\n")
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func matchMark(ok bool) string {
	if ok {
		return "Match"
	}
	return "DIFFERENT"
}

func orNone(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}

func checkLabel(field string) string {
	switch field {
	case verify.FieldContactName:
		return "Contact Name"
	case verify.FieldPurpose:
		return "Purpose of Shipment"
	default:
		return field
	}
}

func yearString(year int) string {
	if year == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", year)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
