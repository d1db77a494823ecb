package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rversteeg/importeer/internal/domain"
)

func sampleReport() *domain.AnalysisReport {
	d := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return &domain.AnalysisReport{
		RequestID: "ab12cd34",
		Vehicle: domain.Vehicle{
			Make: "Volkswagen", Model: "Golf", Year: 2014, MileageKM: 185000,
			FuelType: domain.FuelPetrol, CO2GKM: 209,
			FirstRegistration: time.Date(2014, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		BPM: domain.TaxResult{
			GrossTax:               d("21057.95"),
			NetTax:                 d("1684.64"),
			DepreciationPercentage: d("92"),
			SelectedRegimeYear:     2020,
			SelectedRegimeLabel:    "Tarief 2020 (tweede helft, WLTP)",
			RegimeVerified:         true,
			BaselineTax:            d("3729.12"),
			RegimeSavings:          d("2044.48"),
		},
		MarketStats: domain.MarketStats{
			Count: 3, AvgPrice: d("14000"), MinPrice: d("13500"), MaxPrice: d("14500"),
		},
		Sources:   []string{"marktplaats"},
		Valuation: domain.Valuation{RetailPrice: d("14000"), QuickSalePrice: d("12600"), Source: "market"},
		Costs: domain.CostBreakdown{
			GermanPrice: d("7950"), RestBPM: d("1684.64"),
			TotalImportCosts: d("797.95"), TotalCost: d("10432.59"),
		},
		Result: domain.MarginResult{
			Margin: d("3567.41"), MarginPercentage: d("34.2"), SafeMargin: d("2167.41"),
			Recommendation: domain.RecommendationGo,
		},
		CalculatedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Volkswagen Golf (2014)")
	assert.Contains(t, text, "Tarief 2020 (tweede helft, WLTP)")
	assert.Contains(t, text, "€ 1684.64")
	assert.Contains(t, text, "€ 2044.48")
	assert.Contains(t, text, "GO")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "ab12cd34", decoded["requestId"])

	bpm, ok := decoded["bpm"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1684.64", bpm["netTax"])
	assert.Contains(t, bpm, "baseline2026Tax")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Make", records[0][0])
	assert.Equal(t, "Volkswagen", records[1][0])
	assert.Equal(t, "GO", records[1][len(records[1])-1])
}

func TestFormatReportUnsupported(t *testing.T) {
	_, err := FormatReport(sampleReport(), "xml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFormatTaxResult(t *testing.T) {
	report := sampleReport()
	text := FormatTaxResult(&report.BPM)

	assert.Contains(t, text, "BPM-berekening")
	assert.Contains(t, text, "€ 21057.95")
	assert.Contains(t, text, "€ 1684.64")
	assert.NotContains(t, text, "geïnterpoleerd")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "€ 1234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "92.0%", FormatPercentage(decimal.NewFromInt(92)))
}
