package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rversteeg/importeer/internal/domain"
)

// CSVFormatter implements a one-row-per-report summary CSV, suitable for
// collecting many candidate analyses in a spreadsheet.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Make", "Model", "Year", "MileageKM", "GermanPrice",
		"RestBPM", "RegimeYear", "RegimeSavings",
		"TotalCost", "RetailValue", "Margin", "SafeMargin", "Recommendation",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		report.Vehicle.Make,
		report.Vehicle.Model,
		strconv.Itoa(report.Vehicle.Year),
		strconv.Itoa(report.Vehicle.MileageKM),
		report.Costs.GermanPrice.StringFixed(2),
		report.BPM.NetTax.StringFixed(2),
		strconv.Itoa(report.BPM.SelectedRegimeYear),
		report.BPM.RegimeSavings.StringFixed(2),
		report.Costs.TotalCost.StringFixed(2),
		report.Valuation.RetailPrice.StringFixed(2),
		report.Result.Margin.StringFixed(2),
		report.Result.SafeMargin.StringFixed(2),
		string(report.Result.Recommendation),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
