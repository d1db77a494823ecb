package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rversteeg/importeer/internal/domain"
)

func comps(prices ...int64) []domain.Comparable {
	out := make([]domain.Comparable, 0, len(prices))
	for _, p := range prices {
		out = append(out, domain.Comparable{PriceEUR: decimal.NewFromInt(p)})
	}
	return out
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.Count)
	assert.True(t, stats.AvgPrice.IsZero())
}

func TestComputeStatsSmallSampleSkipsFiltering(t *testing.T) {
	stats := ComputeStats(comps(10000, 12000, 14000))
	assert.Equal(t, 3, stats.Count)
	assert.True(t, stats.AvgPrice.Equal(decimal.NewFromInt(12000)), "avg %s", stats.AvgPrice)
	assert.True(t, stats.MedianPrice.Equal(decimal.NewFromInt(12000)))
	assert.True(t, stats.MinPrice.Equal(decimal.NewFromInt(10000)))
	assert.True(t, stats.MaxPrice.Equal(decimal.NewFromInt(14000)))
}

func TestComputeStatsFiltersOutliers(t *testing.T) {
	// One absurd listing among realistic ones must not drag the average.
	stats := ComputeStats(comps(18000, 18500, 19000, 19500, 20000, 99000))
	assert.Equal(t, 6, stats.Count)
	assert.True(t, stats.MaxPrice.Equal(decimal.NewFromInt(20000)),
		"outlier survived: max %s", stats.MaxPrice)
	assert.True(t, stats.AvgPrice.Equal(decimal.NewFromInt(19000)), "avg %s", stats.AvgPrice)
}

func TestSources(t *testing.T) {
	comparables := []domain.Comparable{
		{Source: "autoscout24"},
		{Source: "marktplaats"},
		{Source: "autoscout24"},
		{Source: ""},
	}
	assert.ElementsMatch(t, []string{"autoscout24", "marktplaats"}, Sources(comparables))
}
