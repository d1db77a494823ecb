package bpm

import (
	"github.com/shopspring/decimal"

	"github.com/rversteeg/importeer/internal/domain"
)

// DieselSurchargeRule is the per-regime diesel surcharge. CO2Threshold gates
// whether any surcharge applies; CO2Subtract is the amount taken off before
// multiplying. From the 2024 regime onward the statute uses different
// constants for the two (threshold 70, subtract 69), so they must not be
// conflated.
type DieselSurchargeRule struct {
	CO2Threshold int
	CO2Subtract  int
	RatePerGram  decimal.Decimal
}

// dieselSurcharge returns the surcharge amount. Zero for every fuel type
// other than diesel and for CO2 at or below the threshold.
func dieselSurcharge(co2 int, fuel domain.FuelType, rule DieselSurchargeRule) decimal.Decimal {
	if fuel != domain.FuelDiesel {
		return decimal.Zero
	}
	if co2 <= rule.CO2Threshold {
		return decimal.Zero
	}
	excess := decimal.NewFromInt(int64(co2 - rule.CO2Subtract))
	return excess.Mul(rule.RatePerGram).Round(2)
}
