package bpm

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rversteeg/importeer/internal/domain"
)

// wltpCutover is the moment the WLTP measurement protocol replaced NEDC.
// Registrations before it get an advisory on the result.
var wltpCutover = time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC)

const nedcAdvisory = "Registered before July 2020: an NEDC-based CO2 figure under pre-WLTP regimes " +
	"may yield a lower tax than any regime in this catalog."

// TaxInput is the calculator's only input. ValuationDate pins "now" for the
// age calculation; leave it zero to use the wall clock.
type TaxInput struct {
	CO2GKM            int
	FuelType          domain.FuelType
	FirstRegistration time.Time
	ValuationDate     time.Time
}

// Calculator computes the BPM owed on an imported vehicle, exercising the
// keuzerecht: of all regimes from the vehicle's registration year through
// the newest catalog year, the one with the lowest gross tax is applied.
// A Calculator is stateless apart from its read-only tables and is safe for
// concurrent use.
type Calculator struct {
	catalog      *RegimeCatalog
	depreciation []DepreciationBracket
}

// NewCalculator returns a calculator backed by the historical 2020-2026
// catalog and the default depreciation schedule.
func NewCalculator() *Calculator {
	return NewCalculatorWithCatalog(DefaultCatalog())
}

// NewCalculatorWithCatalog returns a calculator over a custom regime
// catalog; the depreciation schedule is shared across regimes either way.
func NewCalculatorWithCatalog(catalog *RegimeCatalog) *Calculator {
	return &Calculator{catalog: catalog, depreciation: defaultDepreciationTable}
}

// Calculate produces the complete tax breakdown for one vehicle. It either
// returns an internally consistent result or fails with InvalidInputError;
// there are no other failure modes.
func (c *Calculator) Calculate(input TaxInput) (*domain.TaxResult, error) {
	if input.CO2GKM < 0 {
		return nil, invalidInput("co2_gkm", "must be non-negative, got %d", input.CO2GKM)
	}
	if !input.FuelType.Valid() {
		return nil, invalidInput("fuel_type", "unrecognized value %q", input.FuelType)
	}
	at := input.ValuationDate
	if at.IsZero() {
		at = time.Now()
	}
	if input.FirstRegistration.After(at) {
		return nil, invalidInput("first_registration_date", "%s is in the future",
			input.FirstRegistration.Format("2006-01-02"))
	}
	newest, ok := c.catalog.Newest()
	if !ok {
		return nil, fmt.Errorf("regime catalog is empty")
	}

	ageMonths := AgeInMonths(input.FirstRegistration, at)
	depreciation := depreciationPercentage(ageMonths, c.depreciation)

	// Baseline under the newest regime, always computed even when an older
	// regime wins.
	baselineGross, err := c.grossForRegime(input.CO2GKM, input.FuelType, newest)
	if err != nil {
		return nil, err
	}
	baselineNet := applyDepreciation(baselineGross, depreciation)

	selected := newest
	selectedGross := baselineGross
	eligible := c.catalog.Eligible(input.FirstRegistration.Year())
	for i, regime := range eligible {
		gross, err := c.grossForRegime(input.CO2GKM, input.FuelType, regime)
		if err != nil {
			return nil, err
		}
		// Strict minimum, first seen wins: ties keep the earliest
		// eligible year in catalog order.
		if i == 0 || gross.LessThan(selectedGross) {
			selected = regime
			selectedGross = gross
		}
	}

	net := applyDepreciation(selectedGross, depreciation)
	surcharge := dieselSurcharge(input.CO2GKM, input.FuelType, selected.DieselRule)

	result := &domain.TaxResult{
		GrossTax:               selectedGross,
		NetTax:                 net,
		DepreciationPercentage: depreciation,
		DieselSurcharge:        surcharge,
		VehicleAgeMonths:       ageMonths,
		CO2GKM:                 input.CO2GKM,
		FuelType:               input.FuelType,
		SelectedRegimeYear:     selected.Year,
		SelectedRegimeLabel:    selected.Label,
		RegimeVerified:         selected.Verified,
		BaselineTax:            baselineNet,
		RegimeSavings:          baselineNet.Sub(net).Round(2),
	}
	if input.FirstRegistration.Before(wltpCutover) {
		result.Advisory = nedcAdvisory
	}
	return result, nil
}

// grossForRegime is bracket tax plus diesel surcharge, with one override:
// electric vehicles are fully exempt under regimes that still carried the
// EV exemption.
func (c *Calculator) grossForRegime(co2 int, fuel domain.FuelType, regime TaxRegime) (decimal.Decimal, error) {
	if fuel == domain.FuelElectric && regime.EVExempt {
		return decimal.Zero, nil
	}
	gross, err := evaluateGrossTax(co2, regime.Brackets)
	if err != nil {
		return decimal.Zero, err
	}
	return gross.Add(dieselSurcharge(co2, fuel, regime.DieselRule)), nil
}

// applyDepreciation discounts a gross amount by the depreciation percentage,
// yielding the rest BPM actually owed.
func applyDepreciation(gross, percentage decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(percentage.Div(hundred))
	return gross.Mul(factor).Round(2)
}

// Catalog exposes the calculator's regime catalog for reporting.
func (c *Calculator) Catalog() *RegimeCatalog {
	return c.catalog
}
