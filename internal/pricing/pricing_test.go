package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rversteeg/importeer/internal/domain"
)

func comp(year, mileage int, price string) domain.Comparable {
	return domain.Comparable{
		Year:      year,
		MileageKM: mileage,
		PriceEUR:  decimal.RequireFromString(price),
	}
}

func TestAnnualDepreciationRate(t *testing.T) {
	tests := []struct {
		name        string
		comparables []domain.Comparable
		want        string
	}{
		{
			name:        "too few samples falls back to default",
			comparables: []domain.Comparable{comp(2018, 100000, "10000")},
			want:        "0.08",
		},
		{
			name: "derived from year over year price drop",
			comparables: []domain.Comparable{
				comp(2018, 100000, "10000"),
				comp(2019, 100000, "9000"),
			},
			want: "0.1111",
		},
		{
			name: "implausible rates rejected",
			comparables: []domain.Comparable{
				comp(2018, 100000, "10000"),
				comp(2019, 100000, "20000"),
			},
			want: "0.08",
		},
		{
			name: "same year pairs ignored",
			comparables: []domain.Comparable{
				comp(2018, 100000, "10000"),
				comp(2018, 90000, "10500"),
			},
			want: "0.08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnualDepreciationRate(tt.comparables)
			assert.True(t, got.Round(4).Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestNormalizePriceToYear(t *testing.T) {
	price := decimal.NewFromInt(10000)
	rate := decimal.RequireFromString("0.1")

	same := NormalizePriceToYear(price, 2020, 2020, rate)
	assert.True(t, same.Equal(price))

	older := NormalizePriceToYear(price, 2020, 2018, rate)
	assert.True(t, older.Equal(decimal.NewFromInt(8100)), "got %s", older)

	newer := NormalizePriceToYear(price, 2018, 2020, rate)
	assert.True(t, newer.Equal(decimal.NewFromInt(12100)), "got %s", newer)
}

func TestEquipmentScore(t *testing.T) {
	tests := []struct {
		name       string
		target     []string
		comparable []string
		want       string
	}{
		{"no target equipment", nil, []string{"Navi"}, "1"},
		{"exact match", []string{"Navi", "Leder"}, []string{"navi", "LEDER"}, "1"},
		{"one missing", []string{"Navi", "Leder"}, []string{"Navi"}, "0.45"},
		{"extras rewarded", []string{"Navi"}, []string{"Navi", "Leder", "Pano"}, "1.04"},
		{"capped", []string{"Navi"}, []string{
			"Navi", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o",
		}, "1.2"},
		{"clamped at zero", []string{"a", "b", "c"}, nil, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquipmentScore(tt.target, tt.comparable)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestScoreComparables(t *testing.T) {
	target := domain.Vehicle{Year: 2018, MileageKM: 100000}
	comparables := []domain.Comparable{
		comp(2017, 150000, "8500"),
		comp(2018, 100000, "10000"),
	}

	scored := ScoreComparables(target, comparables)
	require.Len(t, scored, 2)

	// Best match first: same year, same mileage.
	assert.Equal(t, 0, scored[0].YearDelta)
	assert.True(t, scored[0].RelevanceScore.Equal(decimal.NewFromInt(1)),
		"got %s", scored[0].RelevanceScore)

	assert.Equal(t, -1, scored[1].YearDelta)
	assert.True(t, scored[1].RelevanceScore.LessThan(scored[0].RelevanceScore))
	// The 2017 car's price is lifted towards the 2018 build year.
	assert.True(t, scored[1].NormalizedPrice.GreaterThan(scored[1].PriceEUR))
}

func TestScoreComparablesEmpty(t *testing.T) {
	assert.Nil(t, ScoreComparables(domain.Vehicle{Year: 2018}, nil))
}

func TestEstimateMarketValue(t *testing.T) {
	target := domain.Vehicle{Year: 2018, MileageKM: 100000}
	comparables := []domain.Comparable{
		comp(2018, 100000, "10000"),
		comp(2018, 100000, "10000"),
		comp(2018, 100000, "10000"),
	}

	value := EstimateMarketValue(ScoreComparables(target, comparables))

	assert.Equal(t, 3, value.ComparablesUsed)
	assert.True(t, value.EstimatedValue.Equal(decimal.NewFromInt(10000)),
		"got %s", value.EstimatedValue)
	assert.True(t, value.ValueLow.Equal(decimal.NewFromInt(10000)))
	assert.True(t, value.ValueHigh.Equal(decimal.NewFromInt(10000)))
	// 3 of 5 target samples at perfect relevance: 0.3 + 0.5.
	assert.True(t, value.Confidence.Equal(decimal.RequireFromString("0.8")),
		"got %s", value.Confidence)
	assert.True(t, value.DepreciationRate.Equal(decimal.NewFromInt(8)),
		"got %s", value.DepreciationRate)
}

func TestEstimateMarketValueThinSample(t *testing.T) {
	target := domain.Vehicle{Year: 2018, MileageKM: 100000}
	scored := ScoreComparables(target, []domain.Comparable{
		comp(2014, 250000, "6000"),
	})

	value := EstimateMarketValue(scored)

	assert.Equal(t, 1, value.ComparablesUsed)
	assert.True(t, value.EstimatedValue.GreaterThan(decimal.Zero))
	assert.True(t, value.ValueLow.LessThan(value.EstimatedValue))
	assert.True(t, value.ValueHigh.GreaterThan(value.EstimatedValue))
	assert.True(t, value.Confidence.LessThan(decimal.RequireFromString("0.5")))
}

func TestEstimateMarketValueEmpty(t *testing.T) {
	value := EstimateMarketValue(nil)
	assert.Equal(t, 0, value.ComparablesUsed)
	assert.True(t, value.EstimatedValue.IsZero())
}
