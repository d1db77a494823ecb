// Package market holds the Dutch-market side of an analysis: the search
// seam implemented by marketplace collaborators and the statistics derived
// from whatever comparables they return.
package market

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rversteeg/importeer/internal/domain"
)

// Searcher finds comparable vehicles on the Dutch market. Implementations
// wrap marketplace scrapers or fixture data; the engine only consumes the
// returned price points.
type Searcher interface {
	Search(ctx context.Context, vehicle domain.Vehicle) ([]domain.Comparable, error)
}

// StaticSearcher returns a fixed comparable set; used for file-driven
// analyses and tests.
type StaticSearcher struct {
	Comparables []domain.Comparable
}

func (s StaticSearcher) Search(ctx context.Context, vehicle domain.Vehicle) ([]domain.Comparable, error) {
	return s.Comparables, nil
}

var iqrFactor = decimal.RequireFromString("1.5")

// ComputeStats summarizes comparable asking prices. Outliers are dropped
// with the IQR method before averaging; Count still reports the unfiltered
// comparable count.
func ComputeStats(comparables []domain.Comparable) domain.MarketStats {
	if len(comparables) == 0 {
		return domain.MarketStats{}
	}

	prices := lo.Map(comparables, func(c domain.Comparable, _ int) decimal.Decimal {
		return c.PriceEUR
	})
	sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })

	filtered := prices
	if len(prices) >= 4 {
		q1 := prices[len(prices)/4]
		q3 := prices[(3*len(prices))/4]
		iqr := q3.Sub(q1)
		lower := q1.Sub(iqr.Mul(iqrFactor))
		upper := q3.Add(iqr.Mul(iqrFactor))
		filtered = lo.Filter(prices, func(p decimal.Decimal, _ int) bool {
			return p.GreaterThanOrEqual(lower) && p.LessThanOrEqual(upper)
		})
		if len(filtered) == 0 {
			filtered = prices
		}
	}

	sum := decimal.Zero
	for _, p := range filtered {
		sum = sum.Add(p)
	}

	return domain.MarketStats{
		Count:       len(comparables),
		AvgPrice:    sum.Div(decimal.NewFromInt(int64(len(filtered)))).Round(2),
		MedianPrice: filtered[len(filtered)/2],
		MinPrice:    filtered[0],
		MaxPrice:    filtered[len(filtered)-1],
	}
}

// Sources lists the distinct marketplace names the comparables came from.
func Sources(comparables []domain.Comparable) []string {
	sources := lo.FilterMap(comparables, func(c domain.Comparable, _ int) (string, bool) {
		return c.Source, c.Source != ""
	})
	return lo.Uniq(sources)
}
