// Package valuation turns a vehicle and its market comparables into a Dutch
// retail and quick-sale price estimate.
package valuation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/rversteeg/importeer/internal/domain"
	"github.com/rversteeg/importeer/internal/pricing"
)

// Valuer produces a price estimate for a vehicle. Implementations may call
// external services; the context bounds that work.
type Valuer interface {
	Value(ctx context.Context, vehicle domain.Vehicle, comparables []domain.Comparable) (*domain.Valuation, error)
}

var (
	quickSaleFactor    = decimal.RequireFromString("0.90")
	noCompsRetailLift  = decimal.RequireFromString("1.15")
	noCompsQuickLift   = decimal.RequireFromString("1.05")
	lowConfidenceFloor = decimal.RequireFromString("0.4")
)

// MarketValuer estimates prices from the comparables alone, through the
// pricing model. It is fully deterministic and used both standalone and as
// the fallback when no external valuer is configured.
type MarketValuer struct {
	logger *logrus.Logger
}

func NewMarketValuer(logger *logrus.Logger) *MarketValuer {
	if logger == nil {
		logger = logrus.New()
	}
	return &MarketValuer{logger: logger}
}

func (v *MarketValuer) Value(ctx context.Context, vehicle domain.Vehicle, comparables []domain.Comparable) (*domain.Valuation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(comparables) == 0 {
		return v.withoutComparables(vehicle), nil
	}

	scored := pricing.ScoreComparables(vehicle, comparables)
	estimate := pricing.EstimateMarketValue(scored)
	if estimate.EstimatedValue.IsZero() {
		return v.withoutComparables(vehicle), nil
	}

	retail := estimate.EstimatedValue
	val := &domain.Valuation{
		RetailPrice:    retail,
		QuickSalePrice: retail.Mul(quickSaleFactor).Round(0),
		Confidence:     estimate.Confidence,
		Source:         "market",
		Reasoning: fmt.Sprintf(
			"Gewogen marktwaarde op basis van %d vergelijkbare advertenties (afschrijving %s%% per jaar, bandbreedte %s - %s).",
			estimate.ComparablesUsed,
			estimate.DepreciationRate,
			estimate.ValueLow.StringFixed(0),
			estimate.ValueHigh.StringFixed(0),
		),
	}

	if estimate.ComparablesUsed >= 5 {
		val.Pros = append(val.Pros, "Ruime set vergelijkbare advertenties gevonden")
	}
	if estimate.Confidence.LessThan(lowConfidenceFloor) {
		val.Cons = append(val.Cons, "Weinig relevante vergelijkingen, schatting is indicatief")
	}

	v.logger.WithFields(logrus.Fields{
		"retail":      val.RetailPrice,
		"quick_sale":  val.QuickSalePrice,
		"confidence":  val.Confidence,
		"comparables": estimate.ComparablesUsed,
	}).Debug("market valuation computed")

	return val, nil
}

// withoutComparables falls back to the German listing price with a margin
// for the Dutch market, which typically prices above the German one.
func (v *MarketValuer) withoutComparables(vehicle domain.Vehicle) *domain.Valuation {
	return &domain.Valuation{
		RetailPrice:    vehicle.PriceEUR.Mul(noCompsRetailLift).Round(0),
		QuickSalePrice: vehicle.PriceEUR.Mul(noCompsQuickLift).Round(0),
		Confidence:     decimal.RequireFromString("0.2"),
		Source:         "heuristic",
		Reasoning:      "Geen vergelijkbare advertenties gevonden; schatting afgeleid van de Duitse vraagprijs.",
		Cons:           []string{"Geen marktdata beschikbaar voor dit model"},
	}
}
