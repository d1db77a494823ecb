package bpm

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one row of a progressive CO2 schedule. The bracket matches
// CO2 values in [MinCO2, MaxCO2]; a nil MaxCO2 means the bracket is
// open-ended. Within a bracket the tax is linear:
//
//	tax = (co2 - Threshold) * RatePerGram + BaseAmount
//
// BaseAmount equals the tax at the threshold gram, so a well-formed table is
// continuous at every bracket boundary up to one marginal rate.
type TaxBracket struct {
	MinCO2      int
	MaxCO2      *int
	Threshold   int
	RatePerGram decimal.Decimal
	BaseAmount  decimal.Decimal
}

// bracketTaxAt evaluates the bracket's linear formula for a CO2 value.
func bracketTaxAt(co2 int, b TaxBracket) decimal.Decimal {
	excess := decimal.NewFromInt(int64(co2 - b.Threshold))
	return excess.Mul(b.RatePerGram).Add(b.BaseAmount).Round(2)
}

// evaluateGrossTax maps a CO2 emission value to the gross tax amount under
// the given bracket table. CO2 values beyond every bounded bracket are
// extrapolated linearly from the last row; negative CO2 is a precondition
// violation.
func evaluateGrossTax(co2 int, brackets []TaxBracket) (decimal.Decimal, error) {
	if co2 < 0 {
		return decimal.Zero, invalidInput("co2_gkm", "must be non-negative, got %d", co2)
	}
	if len(brackets) == 0 {
		return decimal.Zero, invalidInput("brackets", "bracket table is empty")
	}
	for _, b := range brackets {
		if co2 >= b.MinCO2 && (b.MaxCO2 == nil || co2 <= *b.MaxCO2) {
			return bracketTaxAt(co2, b), nil
		}
	}
	// Every published table ends in an open bracket, so this only triggers
	// for synthetic tables. Extrapolate from the last row.
	return bracketTaxAt(co2, brackets[len(brackets)-1]), nil
}

// upTo is a convenience for bounded bracket rows in table literals.
func upTo(max int) *int {
	return &max
}
