package output

import (
	"encoding/json"

	"github.com/rversteeg/importeer/internal/domain"
)

// JSONFormatter renders the full report as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
