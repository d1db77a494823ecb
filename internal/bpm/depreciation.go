package bpm

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationBracket is one row of the forfaitaire afschrijvingstabel. The
// percentage grows linearly within the bracket:
//
//	pct = BasePercentage + (age - MinAgeMonths) * MonthlyAddition
//
// capped at 100. A nil MaxAgeMonths means the bracket is open-ended.
type DepreciationBracket struct {
	MinAgeMonths    int
	MaxAgeMonths    *int
	BasePercentage  decimal.Decimal
	MonthlyAddition decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// defaultDepreciationTable is the flat-rate depreciation schedule applied to
// every regime alike; depreciation is age-based, not regime-based.
var defaultDepreciationTable = []DepreciationBracket{
	{0, upTo(3), dec("0"), dec("8")},
	{4, upTo(6), dec("24"), dec("3")},
	{7, upTo(9), dec("33"), dec("3")},
	{10, upTo(18), dec("42"), dec("0.875")},
	{19, upTo(24), dec("49"), dec("1.4")},
	{25, upTo(36), dec("56"), dec("0.63")},
	{37, upTo(48), dec("63"), dec("0.58")},
	{49, upTo(60), dec("70"), dec("0.5")},
	{61, upTo(72), dec("76"), dec("0.41")},
	{73, upTo(84), dec("81"), dec("0.36")},
	{85, upTo(96), dec("85"), dec("0.27")},
	{97, upTo(108), dec("88"), dec("0.18")},
	{109, upTo(120), dec("90"), dec("0.18")},
	{121, nil, dec("92"), dec("0")},
}

// depreciationPercentage maps vehicle age in months to a depreciation
// percentage in [0, 100]. Ages beyond the table (the open final bracket
// normally prevents this) fall back to the last bracket evaluated at its own
// 12-month mark.
func depreciationPercentage(ageMonths int, table []DepreciationBracket) decimal.Decimal {
	for _, b := range table {
		if ageMonths >= b.MinAgeMonths && (b.MaxAgeMonths == nil || ageMonths <= *b.MaxAgeMonths) {
			months := decimal.NewFromInt(int64(ageMonths - b.MinAgeMonths))
			return capPercentage(b.BasePercentage.Add(months.Mul(b.MonthlyAddition)))
		}
	}
	last := table[len(table)-1]
	return capPercentage(last.BasePercentage.Add(decimal.NewFromInt(12).Mul(last.MonthlyAddition)))
}

func capPercentage(pct decimal.Decimal) decimal.Decimal {
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct.Round(2)
}

// AgeInMonths returns the whole months elapsed between the first
// registration date and the reference date. The count is decremented by one
// when the reference day-of-month precedes the registration day-of-month, so
// a month only counts once it has fully passed. Never negative.
func AgeInMonths(firstRegistration, at time.Time) int {
	months := (at.Year()-firstRegistration.Year())*12 + int(at.Month()) - int(firstRegistration.Month())
	if at.Day() < firstRegistration.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
