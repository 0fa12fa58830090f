package extract

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"invoice-verifier/core/verify"

	"github.com/ledongthuc/pdf"
)

// Line grammar of the carrier invoice. These patterns target one fixed
// layout and must not be loosened; they are scraping, not parsing.
var (
	// itemStartRe marks the first line of an item block:
	// "346.00 3.46 PCS Collectors pieces..."
	itemStartRe = regexp.MustCompile(`^\d+\.?\d*\s+\d+\.?\d*\s+PCS\s+Collectors`)

	// itemLineRe captures the whole item line:
	// qty weight PCS description hs-code country unit-value total-value
	itemLineRe = regexp.MustCompile(`^(\d+\.?\d*)\s+(\d+\.?\d*)\s+PCS\s+(.+?)\s+(\d{6})\s+([A-Z]{2})\s+([\d.]+)\s+([\d,]+\.?\d*)$`)

	// nextItemRe detects the start of the following item block.
	nextItemRe = regexp.MustCompile(`^\d+\.?\d*\s+\d+\.?\d*\s+PCS`)

	// Fallback piecewise patterns for lines the full grammar misses.
	fallbackHSRe      = regexp.MustCompile(`970531`)
	fallbackCountryRe = regexp.MustCompile(`970531\s+([A-Z]{2})`)
	fallbackValuesRe  = regexp.MustCompile(`970531\s+[A-Z]{2}\s+([\d.]+)\s+([\d,]+\.?\d*)`)

	// Description cleanup on the first item line.
	descPrefixRe = regexp.MustCompile(`\d+\.?\d*\s+\d+\.?\d*\s+PCS\s+`)
	descSuffixRe = regexp.MustCompile(`\s*970531.*$`)

	// yearRe captures a minting year trailing a continuation line.
	yearRe = regexp.MustCompile(`(Note|Coin)\s+(19\d{2}|20\d{2})$`)

	// contactRe scrapes the shipper contact reference.
	contactRe = regexp.MustCompile(`(SB-SHIPPING - PRN \d+)`)
)

// Header scrape constants of the carrier invoice layout.
const (
	contactFallbackMarker = "HK SB-SHIPPING"
	purposeMarker         = "REPAIR_AND_RETURN"
	purposeShipperMarker  = "SB-SHIPPING"
	purposeValue          = "SB-SHIPPING - REPAIR_AND_RETURN"
)

// maxContinuationLines bounds the forward scan for wrapped descriptions.
const maxContinuationLines = 5

// FromPDF extracts the invoice header and line items from a PDF document.
func FromPDF(r io.Reader) (verify.HeaderInfo, []verify.LineItem, error) {
	text, err := readPDFText(r)
	if err != nil {
		return verify.HeaderInfo{}, nil, fmt.Errorf("failed to read pdf document: %w", err)
	}

	header, items := ParseInvoiceText(text)
	return header, items, nil
}

// readPDFText concatenates the row text of every page.
func readPDFText(r io.Reader) (string, error) {
	// The PDF reader needs the total size, so buffer the input first.
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(r)
	if err != nil {
		return "", err
	}

	pdfReader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), size)
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					textBuilder.WriteString(" ")
				}
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}

// ParseInvoiceText scrapes the concatenated page text. Unparseable item
// blocks are skipped, never fatal.
func ParseInvoiceText(text string) (verify.HeaderInfo, []verify.LineItem) {
	lines := strings.Split(text, "\n")
	items := make([]verify.LineItem, 0)

	for i, line := range lines {
		if !itemStartRe.MatchString(line) {
			continue
		}

		item, firstDesc := parseItemLine(line)
		descParts := make([]string, 0, 1+maxContinuationLines)
		if firstDesc != "" {
			descParts = append(descParts, firstDesc)
		}

		// Wrapped descriptions continue on the following lines until the
		// next item, a separator, or a year-tagged terminal line.
		for j := i + 1; j < len(lines) && j <= i+maxContinuationLines; j++ {
			next := strings.TrimSpace(lines[j])

			if nextItemRe.MatchString(next) {
				break
			}
			if next == "" || strings.Contains(next, "Total") || strings.Contains(next, "=") {
				break
			}

			descParts = append(descParts, next)

			if m := yearRe.FindStringSubmatch(next); m != nil {
				year, _ := strconv.Atoi(m[2])
				item.Year = year
				break
			}
		}
		item.Description = strings.TrimSpace(strings.Join(descParts, " "))

		if !invoiceItemComplete(item) {
			continue
		}
		items = append(items, item)
	}

	return scrapeHeader(text), items
}

// parseItemLine decodes the numeric fields of the first item line and returns
// the partial description preceding the HS code.
func parseItemLine(line string) (verify.LineItem, string) {
	var item verify.LineItem

	if m := itemLineRe.FindStringSubmatch(line); m != nil {
		item.Quantity = verify.ParseAmount(m[1])
		item.NetWeight = verify.ParseAmount(m[2])
		item.HSCode = m[4]
		item.CountryCode = m[5]
		item.UnitValue = verify.ParseAmount(m[6])
		item.TotalValue = verify.ParseAmount(m[7])
	} else {
		// Piecewise fallback for lines the full grammar misses.
		parts := strings.Fields(line)
		if len(parts) > 0 {
			item.Quantity = verify.ParseAmount(parts[0])
		}
		if len(parts) > 1 {
			item.NetWeight = verify.ParseAmount(parts[1])
		}
		if fallbackHSRe.MatchString(line) {
			item.HSCode = "970531"
		}
		if m := fallbackCountryRe.FindStringSubmatch(line); m != nil {
			item.CountryCode = m[1]
		}
		if m := fallbackValuesRe.FindStringSubmatch(line); m != nil {
			item.UnitValue = verify.ParseAmount(m[1])
			item.TotalValue = verify.ParseAmount(m[2])
		}
	}

	desc := descPrefixRe.ReplaceAllString(line, "")
	desc = descSuffixRe.ReplaceAllString(desc, "")
	return item, strings.TrimSpace(desc)
}

// invoiceItemComplete gates an item block into the record list. The invoice
// side requires the identifying fields to have been scraped; without them the
// block was noise, not an item.
func invoiceItemComplete(item verify.LineItem) bool {
	return item.Quantity.Known() &&
		item.NetWeight.Known() &&
		item.HSCode != "" &&
		item.CountryCode != "" &&
		strings.TrimSpace(item.Description) != ""
}

// scrapeHeader pulls the contact and purpose markers out of the page text.
func scrapeHeader(text string) verify.HeaderInfo {
	var header verify.HeaderInfo

	if m := contactRe.FindStringSubmatch(text); m != nil {
		header.ContactName = strings.TrimSpace(m[1])
	}
	if header.ContactName == "" && strings.Contains(text, contactFallbackMarker) {
		header.ContactName = contactFallbackMarker
	}

	if strings.Contains(text, purposeMarker) && strings.Contains(text, purposeShipperMarker) {
		header.Purpose = purposeValue
	}

	return header
}
