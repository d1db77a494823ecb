// Package margin computes the all-in import cost of a German listing and
// turns the gap to the Dutch market value into a GO/CONSIDER/NO_GO advice.
package margin

import (
	"github.com/shopspring/decimal"

	"github.com/rversteeg/importeer/internal/domain"
)

// DefaultImportCosts are typical fixed costs for a single car import from
// Germany: transport on a trailer, RDW keuring, plates, paperwork and the
// NAP mileage check.
func DefaultImportCosts() domain.ImportCosts {
	return domain.ImportCosts{
		Transport:     decimal.NewFromInt(450),
		RDWInspection: decimal.NewFromInt(85),
		LicensePlates: decimal.NewFromInt(50),
		HandlingFee:   decimal.NewFromInt(200),
		NAPCheck:      decimal.RequireFromString("12.95"),
	}
}

// DefaultThresholds require 2500 margin for a GO, 1000 for a CONSIDER, and
// at least 500 left over at the quick-sale price before a GO is given.
func DefaultThresholds() domain.MarginThresholds {
	return domain.MarginThresholds{
		Go:         decimal.NewFromInt(2500),
		Consider:   decimal.NewFromInt(1000),
		SafeMargin: decimal.NewFromInt(500),
	}
}

// Calculator applies one set of import costs and thresholds to candidates.
type Calculator struct {
	costs      domain.ImportCosts
	thresholds domain.MarginThresholds
}

func NewCalculator() *Calculator {
	return NewCalculatorWithConfig(DefaultImportCosts(), DefaultThresholds())
}

func NewCalculatorWithConfig(costs domain.ImportCosts, thresholds domain.MarginThresholds) *Calculator {
	return &Calculator{costs: costs, thresholds: thresholds}
}

// Costs itemizes everything paid before resale: the German asking price,
// the rest-BPM due at registration, and the fixed import costs.
func (c *Calculator) Costs(germanPrice, restBPM decimal.Decimal) domain.CostBreakdown {
	total := c.costs.Total()
	return domain.CostBreakdown{
		GermanPrice:      germanPrice,
		RestBPM:          restBPM,
		ImportCosts:      c.costs,
		TotalImportCosts: total,
		TotalCost:        germanPrice.Add(restBPM).Add(total).Round(2),
	}
}

// Evaluate compares the total cost against the valuation. The headline
// margin is taken at the retail price; the safe margin at the quick-sale
// price, and a GO additionally requires the safe margin to clear its
// threshold so a forced quick sale still does not lose money.
func (c *Calculator) Evaluate(costs domain.CostBreakdown, valuation domain.Valuation) domain.MarginResult {
	marginAmount := valuation.RetailPrice.Sub(costs.TotalCost).Round(2)
	safeMargin := valuation.QuickSalePrice.Sub(costs.TotalCost).Round(2)

	var pct decimal.Decimal
	if costs.TotalCost.GreaterThan(decimal.Zero) {
		pct = marginAmount.Div(costs.TotalCost).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return domain.MarginResult{
		Margin:           marginAmount,
		MarginPercentage: pct,
		SafeMargin:       safeMargin,
		Recommendation:   c.recommend(marginAmount, safeMargin),
	}
}

func (c *Calculator) recommend(marginAmount, safeMargin decimal.Decimal) domain.Recommendation {
	switch {
	case marginAmount.GreaterThanOrEqual(c.thresholds.Go) && safeMargin.GreaterThan(c.thresholds.SafeMargin):
		return domain.RecommendationGo
	case marginAmount.GreaterThanOrEqual(c.thresholds.Consider):
		return domain.RecommendationConsider
	default:
		return domain.RecommendationNoGo
	}
}
