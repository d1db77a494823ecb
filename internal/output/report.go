// Package output renders BPM results and full analysis reports for the
// console and for machine consumption.
package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rversteeg/importeer/internal/domain"
)

// Formatter renders an analysis report in one output format.
type Formatter interface {
	Name() string
	Format(report *domain.AnalysisReport) ([]byte, error)
}

// FormatReport renders a report in the named format.
func FormatReport(report *domain.AnalysisReport, format string) ([]byte, error) {
	for _, f := range []Formatter{ConsoleFormatter{}, JSONFormatter{}, CSVFormatter{}} {
		if f.Name() == format {
			return f.Format(report)
		}
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// FormatCurrency formats a decimal as a euro amount
func FormatCurrency(amount decimal.Decimal) string {
	return "€ " + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}
