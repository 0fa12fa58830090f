package verify

import "github.com/shopspring/decimal"

// Match reconciles the spreadsheet records against the invoice records and
// returns the resulting partition. The algorithm is greedy and order
// dependent by contract: spreadsheet items are processed in input order, and
// for each one the unclaimed invoice items are scanned in input order. The
// first candidate agreeing on all fields wins outright; otherwise the
// highest-scoring candidate at or above the partial threshold is taken, ties
// keeping the first encountered. Running Match twice on the same slices
// yields the identical Summary.
func Match(excelItems, pdfItems []LineItem, cfg Config) Summary {
	tol := cfg.ToleranceDecimal()
	threshold := cfg.PartialThreshold()

	summary := Summary{
		TotalExcel:     len(excelItems),
		TotalPDF:       len(pdfItems),
		Partials:       make([]PartialMatch, 0),
		UnmatchedExcel: make([]LineItem, 0),
		UnmatchedPDF:   make([]LineItem, 0),
	}

	claimedPDF := make(map[int]struct{}, len(pdfItems))
	claimedExcel := make(map[int]struct{}, len(excelItems))

	for excelIdx, excelItem := range excelItems {
		bestScore := 0
		bestIdx := -1
		var bestDiff FieldDiff

		for pdfIdx, pdfItem := range pdfItems {
			if _, taken := claimedPDF[pdfIdx]; taken {
				continue
			}

			diff := compareItems(excelItem, pdfItem, tol)
			score := diff.Score()

			if score == FieldCount {
				summary.PerfectMatches++
				claimedPDF[pdfIdx] = struct{}{}
				claimedExcel[excelIdx] = struct{}{}
				break
			}

			// Strictly-greater keeps the first best candidate on ties.
			if score > bestScore && score >= threshold {
				bestScore = score
				bestIdx = pdfIdx
				bestDiff = diff
			}
		}

		if _, matched := claimedExcel[excelIdx]; matched || bestIdx < 0 {
			continue
		}

		summary.Partials = append(summary.Partials, PartialMatch{
			Excel: excelItem,
			PDF:   pdfItems[bestIdx],
			Diff:  bestDiff,
			Score: bestScore,
		})
		claimedPDF[bestIdx] = struct{}{}
		claimedExcel[excelIdx] = struct{}{}
	}

	for idx, item := range excelItems {
		if _, matched := claimedExcel[idx]; !matched {
			summary.UnmatchedExcel = append(summary.UnmatchedExcel, item)
		}
	}
	for idx, item := range pdfItems {
		if _, matched := claimedPDF[idx]; !matched {
			summary.UnmatchedPDF = append(summary.UnmatchedPDF, item)
		}
	}

	return summary
}

// compareItems builds the 8-field agreement vector for one candidate pairing.
func compareItems(a, b LineItem, tol decimal.Decimal) FieldDiff {
	return FieldDiff{
		Quantity:    ValuesEqual(a.Quantity, b.Quantity, tol),
		NetWeight:   ValuesEqual(a.NetWeight, b.NetWeight, tol),
		Description: DescriptionsMatch(a.Description, b.Description),
		HSCode:      codesEqual(a.HSCode, b.HSCode),
		CountryCode: codesEqual(a.CountryCode, b.CountryCode),
		Year:        a.Year == b.Year,
		UnitValue:   ValuesEqual(a.UnitValue, b.UnitValue, tol),
		TotalValue:  ValuesEqual(a.TotalValue, b.TotalValue, tol),
	}
}
