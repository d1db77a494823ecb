package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recommendation is the import advice derived from the margin figures.
type Recommendation string

const (
	RecommendationGo       Recommendation = "GO"
	RecommendationConsider Recommendation = "CONSIDER"
	RecommendationNoGo     Recommendation = "NO_GO"
)

// ImportCosts are the fixed Dutch-side costs of bringing a car in.
type ImportCosts struct {
	Transport     decimal.Decimal `yaml:"transport" json:"transport"`
	RDWInspection decimal.Decimal `yaml:"rdw_inspection" json:"rdwInspection"`
	LicensePlates decimal.Decimal `yaml:"license_plates" json:"licensePlates"`
	HandlingFee   decimal.Decimal `yaml:"handling_fee" json:"handlingFee"`
	NAPCheck      decimal.Decimal `yaml:"nap_check" json:"napCheck"`
}

// Total returns the sum of all fixed import costs.
func (c ImportCosts) Total() decimal.Decimal {
	return c.Transport.Add(c.RDWInspection).Add(c.LicensePlates).Add(c.HandlingFee).Add(c.NAPCheck)
}

// MarginThresholds drive the GO/CONSIDER/NO_GO decision.
type MarginThresholds struct {
	Go         decimal.Decimal `yaml:"go" json:"go"`
	Consider   decimal.Decimal `yaml:"consider" json:"consider"`
	SafeMargin decimal.Decimal `yaml:"safe_margin" json:"safeMargin"`
}

// CostBreakdown itemizes everything the importer pays before resale.
type CostBreakdown struct {
	GermanPrice      decimal.Decimal `json:"germanPrice"`
	RestBPM          decimal.Decimal `json:"bpm"`
	ImportCosts      ImportCosts     `json:"importCosts"`
	TotalImportCosts decimal.Decimal `json:"totalImportCosts"`
	TotalCost        decimal.Decimal `json:"totalCost"`
}

// MarginResult is the profitability verdict for one import candidate.
type MarginResult struct {
	Margin           decimal.Decimal `json:"margin"`
	MarginPercentage decimal.Decimal `json:"marginPercentage"`
	SafeMargin       decimal.Decimal `json:"safeMargin"`
	Recommendation   Recommendation  `json:"recommendation"`
}

// AnalysisReport bundles the full evaluation of a single listing.
type AnalysisReport struct {
	RequestID        string        `json:"requestId"`
	Vehicle          Vehicle       `json:"vehicle"`
	BPM              TaxResult     `json:"bpm"`
	Comparables      []Comparable  `json:"comparables,omitempty"`
	MarketStats      MarketStats   `json:"marketStats"`
	Sources          []string      `json:"sources,omitempty"`
	Valuation        Valuation     `json:"aiValuation"`
	Costs            CostBreakdown `json:"costs"`
	Result           MarginResult  `json:"result"`
	CalculatedAt     time.Time     `json:"calculatedAt"`
	ProcessingTimeMS int64         `json:"processingTimeMs"`
}
