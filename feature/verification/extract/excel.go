package extract

import (
	"fmt"
	"io"
	"strings"

	"invoice-verifier/core/verify"

	"github.com/xuri/excelize/v2"
)

// Grid positions and sentinels of the declaration spreadsheet (0-based).
const (
	excelContactRow = 7
	excelContactCol = 1

	// rankSentinel labels the header row directly above the first item row.
	rankSentinel = "Rank"
	// totalSentinel appears in the first cell of the terminal totals row.
	totalSentinel = "Total"
)

// Column map of the item rows (0-based).
const (
	colRank        = 0
	colQuantity    = 1
	colHSCode      = 2
	colCountryCode = 4
	colYear        = 5
	colDescription = 6
	colNetWeightKG = 8
	colTotalValue  = 11
)

// unitValueScale is the rounding applied to the derived unit value.
const unitValueScale = 6

// FromExcel reads the first sheet of an xlsx document and extracts the
// declaration header and line items.
func FromExcel(r io.Reader) (verify.HeaderInfo, []verify.LineItem, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return verify.HeaderInfo{}, nil, fmt.Errorf("failed to open excel document: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return verify.HeaderInfo{}, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	header, items := FromRows(rows)
	return header, items, nil
}

// FromRows extracts the declaration from an already-loaded cell grid.
// Rows missing rank, quantity or description are skipped, never fatal.
func FromRows(rows [][]string) (verify.HeaderInfo, []verify.LineItem) {
	header := verify.HeaderInfo{
		ContactName: strings.TrimSpace(cellAt(rows, excelContactRow, excelContactCol)),
		// The spreadsheet format carries no purpose-of-shipment field.
	}

	items := make([]verify.LineItem, 0)

	start := -1
	for idx := range rows {
		if strings.TrimSpace(cellAt(rows, idx, colRank)) == rankSentinel {
			start = idx + 1
			break
		}
	}
	if start < 0 {
		return header, items
	}

	for idx := start; idx < len(rows); idx++ {
		first := cellAt(rows, idx, colRank)
		if strings.Contains(first, totalSentinel) {
			break
		}
		if strings.TrimSpace(first) == "" {
			continue
		}

		item := rowToItem(rows, idx)
		if !item.Valid() {
			continue
		}
		items = append(items, item)
	}

	return header, items
}

// rowToItem maps one grid row onto a line item using the fixed column map.
func rowToItem(rows [][]string, idx int) verify.LineItem {
	quantity := verify.ParseAmount(cellAt(rows, idx, colQuantity))
	total := verify.ParseAmount(cellAt(rows, idx, colTotalValue))

	item := verify.LineItem{
		Quantity:    quantity,
		NetWeight:   verify.ParseAmount(cellAt(rows, idx, colNetWeightKG)),
		Description: strings.TrimSpace(cellAt(rows, idx, colDescription)),
		HSCode:      strings.ReplaceAll(strings.TrimSpace(cellAt(rows, idx, colHSCode)), ".", ""),
		CountryCode: strings.TrimSpace(cellAt(rows, idx, colCountryCode)),
		Year:        parseYear(cellAt(rows, idx, colYear)),
		TotalValue:  total,
	}

	// The spreadsheet declares no unit value; it is derived from the total.
	// The invoice side takes the unit value literally, so this asymmetry is
	// part of the contract.
	item.UnitValue = deriveUnitValue(total, quantity)

	return item
}

// deriveUnitValue computes total/quantity rounded to six places. It stays
// unknown when either operand is non-numeric, the quantity is not positive or
// the total is zero.
func deriveUnitValue(total, quantity verify.Amount) verify.Amount {
	td, tok := total.Decimal()
	qd, qok := quantity.Decimal()
	if !tok || !qok || !qd.IsPositive() || td.IsZero() {
		return verify.UnknownAmount()
	}
	return verify.AmountFromDecimal(td.Div(qd).Round(unitValueScale))
}

// parseYear reads a year cell that may render as "1990" or "1990.0".
func parseYear(s string) int {
	a := verify.ParseAmount(s)
	d, ok := a.Decimal()
	if !ok {
		return 0
	}
	return int(d.IntPart())
}

// cellAt returns the cell value or "" when the row is ragged.
func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
