package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rversteeg/importeer/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(26)
	goStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cautionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	noGoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// ConsoleFormatter renders a human-readable report with lipgloss styling.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	v := report.Vehicle
	fmt.Fprintln(buf, titleStyle.Render(fmt.Sprintf("%s %s (%d)", v.Make, v.Model, v.Year)))
	if v.Title != "" {
		fmt.Fprintln(buf, dimStyle.Render(v.Title))
	}
	fmt.Fprintln(buf)

	writeLine := func(label string, value string) {
		fmt.Fprintf(buf, "%s%s\n", labelStyle.Render(label), value)
	}

	fmt.Fprintln(buf, sectionStyle.Render("BPM"))
	writeLine("Gekozen tarief", report.BPM.SelectedRegimeLabel)
	writeLine("Bruto BPM", FormatCurrency(report.BPM.GrossTax))
	writeLine("Afschrijving", FormatPercentage(report.BPM.DepreciationPercentage))
	if report.BPM.DieselSurcharge.GreaterThan(decimal.Zero) {
		writeLine("Dieseltoeslag", FormatCurrency(report.BPM.DieselSurcharge))
	}
	writeLine("Rest-BPM", FormatCurrency(report.BPM.NetTax))
	if report.BPM.RegimeSavings.GreaterThan(decimal.Zero) {
		writeLine("Keuzerecht-voordeel", FormatCurrency(report.BPM.RegimeSavings))
	}
	if report.BPM.Advisory != "" {
		fmt.Fprintln(buf, dimStyle.Render(report.BPM.Advisory))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, sectionStyle.Render("Markt"))
	writeLine("Vergelijkbare auto's", fmt.Sprintf("%d", report.MarketStats.Count))
	if report.MarketStats.Count > 0 {
		writeLine("Gemiddelde vraagprijs", FormatCurrency(report.MarketStats.AvgPrice))
		writeLine("Bandbreedte", fmt.Sprintf("%s - %s",
			FormatCurrency(report.MarketStats.MinPrice), FormatCurrency(report.MarketStats.MaxPrice)))
	}
	if len(report.Sources) > 0 {
		writeLine("Bronnen", strings.Join(report.Sources, ", "))
	}
	writeLine("Geschatte verkoopprijs", FormatCurrency(report.Valuation.RetailPrice))
	writeLine("Snelle verkoop", FormatCurrency(report.Valuation.QuickSalePrice))
	if report.Valuation.Reasoning != "" {
		fmt.Fprintln(buf, dimStyle.Render(report.Valuation.Reasoning))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, sectionStyle.Render("Kosten"))
	writeLine("Aanschaf (DE)", FormatCurrency(report.Costs.GermanPrice))
	writeLine("Rest-BPM", FormatCurrency(report.Costs.RestBPM))
	writeLine("Importkosten", FormatCurrency(report.Costs.TotalImportCosts))
	writeLine("Totaal", FormatCurrency(report.Costs.TotalCost))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, sectionStyle.Render("Marge"))
	writeLine("Marge", fmt.Sprintf("%s (%s)",
		FormatCurrency(report.Result.Margin), FormatPercentage(report.Result.MarginPercentage)))
	writeLine("Veilige marge", FormatCurrency(report.Result.SafeMargin))
	fmt.Fprintf(buf, "%s%s\n", labelStyle.Render("Advies"),
		recommendationStyle(report.Result.Recommendation).Render(string(report.Result.Recommendation)))

	return buf.Bytes(), nil
}

func recommendationStyle(r domain.Recommendation) lipgloss.Style {
	switch r {
	case domain.RecommendationGo:
		return goStyle
	case domain.RecommendationConsider:
		return cautionStyle
	default:
		return noGoStyle
	}
}

// FormatTaxResult renders a standalone BPM result for the bpm command.
func FormatTaxResult(result *domain.TaxResult) string {
	buf := &strings.Builder{}

	writeLine := func(label string, value string) {
		fmt.Fprintf(buf, "%s%s\n", labelStyle.Render(label), value)
	}

	fmt.Fprintln(buf, titleStyle.Render("BPM-berekening"))
	writeLine("Leeftijd", fmt.Sprintf("%d maanden", result.VehicleAgeMonths))
	writeLine("CO2-uitstoot", fmt.Sprintf("%d g/km", result.CO2GKM))
	writeLine("Gekozen tarief", result.SelectedRegimeLabel)
	if !result.RegimeVerified {
		fmt.Fprintln(buf, dimStyle.Render("Tarief is geïnterpoleerd, niet geverifieerd tegen de wettekst."))
	}
	writeLine("Bruto BPM", FormatCurrency(result.GrossTax))
	if result.DieselSurcharge.GreaterThan(decimal.Zero) {
		writeLine("Dieseltoeslag", FormatCurrency(result.DieselSurcharge))
	}
	writeLine("Afschrijving", FormatPercentage(result.DepreciationPercentage))
	writeLine("Rest-BPM", FormatCurrency(result.NetTax))
	writeLine("BPM naar huidig tarief", FormatCurrency(result.BaselineTax))
	if result.RegimeSavings.GreaterThan(decimal.Zero) {
		writeLine("Keuzerecht-voordeel", FormatCurrency(result.RegimeSavings))
	}
	if result.Advisory != "" {
		fmt.Fprintln(buf, dimStyle.Render(result.Advisory))
	}

	return buf.String()
}
