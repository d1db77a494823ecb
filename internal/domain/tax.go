package domain

import "github.com/shopspring/decimal"

// TaxResult is the complete BPM breakdown for one vehicle. It is created
// fresh per calculation and never mutated afterwards.
type TaxResult struct {
	GrossTax                decimal.Decimal `json:"grossTax"`
	NetTax                  decimal.Decimal `json:"netTax"`
	DepreciationPercentage  decimal.Decimal `json:"depreciationPercentage"`
	DieselSurcharge         decimal.Decimal `json:"dieselSurcharge"`
	VehicleAgeMonths        int             `json:"vehicleAgeMonths"`
	CO2GKM                  int             `json:"co2Gkm"`
	FuelType                FuelType        `json:"fuelType"`
	SelectedRegimeYear      int             `json:"selectedRegimeYear"`
	SelectedRegimeLabel     string          `json:"selectedRegimeLabel"`
	RegimeVerified          bool            `json:"regimeVerified"`
	BaselineTax             decimal.Decimal `json:"baseline2026Tax"`
	RegimeSavings           decimal.Decimal `json:"regimeSavings"`
	Advisory                string          `json:"advisory,omitempty"`
}
