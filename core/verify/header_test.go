package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerConfig() Config {
	return Config{
		ExpectedContact: "SB-SHIPPING - PRN 5789187",
		ExpectedPurpose: "SB-SHIPPING - REPAIR_AND_RETURN",
	}
}

func TestCheckHeaders(t *testing.T) {
	t.Run("Pass", func(t *testing.T) {
		pdf := HeaderInfo{
			ContactName: "SB-SHIPPING - PRN 5789187",
			Purpose:     "SB-SHIPPING - REPAIR_AND_RETURN",
		}
		excel := HeaderInfo{ContactName: "SB-SHIPPING - PRN 5789187"}

		checks := CheckHeaders(excel, pdf, headerConfig())
		require.Len(t, checks, 2)
		assert.True(t, checks[0].Pass)
		assert.True(t, checks[1].Pass)
		assert.True(t, HeadersPass(checks))
	})

	t.Run("TrailingSpaceFails", func(t *testing.T) {
		pdf := HeaderInfo{
			ContactName: "SB-SHIPPING - PRN 5789187 ",
			Purpose:     "SB-SHIPPING - REPAIR_AND_RETURN",
		}

		checks := CheckHeaders(HeaderInfo{}, pdf, headerConfig())
		assert.False(t, checks[0].Pass)
		assert.False(t, HeadersPass(checks))
	})

	t.Run("PDFDecidesContact", func(t *testing.T) {
		// A matching spreadsheet contact does not rescue a bad invoice contact.
		excel := HeaderInfo{ContactName: "SB-SHIPPING - PRN 5789187"}
		pdf := HeaderInfo{ContactName: "HK SB-SHIPPING", Purpose: "SB-SHIPPING - REPAIR_AND_RETURN"}

		checks := CheckHeaders(excel, pdf, headerConfig())
		assert.False(t, checks[0].Pass)
		assert.Equal(t, "SB-SHIPPING - PRN 5789187", checks[0].ExcelValue)
		assert.Equal(t, "HK SB-SHIPPING", checks[0].PDFValue)
	})

	t.Run("MissingPurposeFails", func(t *testing.T) {
		pdf := HeaderInfo{ContactName: "SB-SHIPPING - PRN 5789187"}

		checks := CheckHeaders(HeaderInfo{}, pdf, headerConfig())
		assert.True(t, checks[0].Pass)
		assert.False(t, checks[1].Pass)
	})
}

func TestConfigDefaults(t *testing.T) {
	t.Run("ToleranceFallback", func(t *testing.T) {
		assert.Equal(t, "0.01", Config{}.ToleranceDecimal().String())
		assert.Equal(t, "0.01", Config{Tolerance: "nonsense"}.ToleranceDecimal().String())
		assert.Equal(t, "0.5", Config{Tolerance: "0.5"}.ToleranceDecimal().String())
	})

	t.Run("ThresholdClamped", func(t *testing.T) {
		assert.Equal(t, 4, Config{}.PartialThreshold())
		assert.Equal(t, 4, Config{MinPartialScore: 9}.PartialThreshold())
		assert.Equal(t, 6, Config{MinPartialScore: 6}.PartialThreshold())
	})
}
