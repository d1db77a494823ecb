package valuation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rversteeg/importeer/internal/domain"
)

func TestMarketValuerWithComparables(t *testing.T) {
	vehicle := domain.Vehicle{Year: 2018, MileageKM: 100000}
	comparables := []domain.Comparable{
		{Year: 2018, MileageKM: 100000, PriceEUR: decimal.NewFromInt(10000)},
		{Year: 2018, MileageKM: 100000, PriceEUR: decimal.NewFromInt(10000)},
		{Year: 2018, MileageKM: 100000, PriceEUR: decimal.NewFromInt(10000)},
	}

	val, err := NewMarketValuer(nil).Value(context.Background(), vehicle, comparables)
	require.NoError(t, err)

	assert.Equal(t, "market", val.Source)
	assert.True(t, val.RetailPrice.Equal(decimal.NewFromInt(10000)), "got %s", val.RetailPrice)
	assert.True(t, val.QuickSalePrice.Equal(decimal.NewFromInt(9000)), "got %s", val.QuickSalePrice)
	assert.NotEmpty(t, val.Reasoning)
}

func TestMarketValuerWithoutComparables(t *testing.T) {
	vehicle := domain.Vehicle{Year: 2018, PriceEUR: decimal.NewFromInt(10000)}

	val, err := NewMarketValuer(nil).Value(context.Background(), vehicle, nil)
	require.NoError(t, err)

	assert.Equal(t, "heuristic", val.Source)
	assert.True(t, val.RetailPrice.Equal(decimal.NewFromInt(11500)), "got %s", val.RetailPrice)
	assert.True(t, val.QuickSalePrice.Equal(decimal.NewFromInt(10500)), "got %s", val.QuickSalePrice)
	assert.NotEmpty(t, val.Cons)
}

func TestMarketValuerHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarketValuer(nil).Value(ctx, domain.Vehicle{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
