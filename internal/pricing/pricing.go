// Package pricing estimates what a vehicle is worth on the Dutch market
// from comparable listings: it derives an annual depreciation rate from the
// comparables themselves, normalizes every price to the target's build year,
// scores relevance, and produces a weighted market value.
package pricing

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/rversteeg/importeer/internal/domain"
)

var (
	defaultDepreciationRate = decimal.RequireFromString("0.08")
	mileageValuePerKM       = decimal.RequireFromString("0.02")
	minAnnualRate           = decimal.RequireFromString("-0.30")
	maxAnnualRate           = decimal.RequireFromString("0.05")
	one                     = decimal.NewFromInt(1)
	hundred                 = decimal.NewFromInt(100)
)

// ScoredComparable is a comparable with its derived valuation inputs.
type ScoredComparable struct {
	domain.Comparable
	NormalizedPrice decimal.Decimal `json:"normalizedPrice"`
	RelevanceScore  decimal.Decimal `json:"relevanceScore"`
	EquipmentScore  decimal.Decimal `json:"equipmentScore"`
	YearDelta       int             `json:"yearDelta"`
}

// MarketValue is the aggregate estimate over the scored comparables.
type MarketValue struct {
	EstimatedValue   decimal.Decimal `json:"estimatedValue"`
	ValueLow         decimal.Decimal `json:"valueLow"`
	ValueHigh        decimal.Decimal `json:"valueHigh"`
	Confidence       decimal.Decimal `json:"confidence"`
	ComparablesUsed  int             `json:"comparablesUsed"`
	DepreciationRate decimal.Decimal `json:"depreciationRate"`
}

// AnnualDepreciationRate estimates how much value the model loses per year,
// from year-over-year price differences between comparables with a rough
// mileage adjustment. Falls back to 8% per year when the sample is too thin
// or too noisy, which suits the 10+ year old cars this tool mostly sees.
func AnnualDepreciationRate(comparables []domain.Comparable) decimal.Decimal {
	usable := lo.Filter(comparables, func(c domain.Comparable, _ int) bool {
		return c.Year > 0 && c.PriceEUR.GreaterThan(decimal.Zero)
	})
	if len(usable) < 2 {
		return defaultDepreciationRate
	}
	sort.Slice(usable, func(i, j int) bool { return usable[i].Year < usable[j].Year })

	var rates []decimal.Decimal
	for i := 0; i < len(usable)-1; i++ {
		older, newer := usable[i], usable[i+1]
		yearDiff := newer.Year - older.Year
		if yearDiff == 0 {
			continue
		}

		priceDiff := newer.PriceEUR.Sub(older.PriceEUR)
		mileageDiff := decimal.NewFromInt(int64(newer.MileageKM - older.MileageKM))
		adjusted := priceDiff.Add(mileageDiff.Mul(mileageValuePerKM))

		annual := adjusted.Div(newer.PriceEUR).Div(decimal.NewFromInt(int64(yearDiff)))
		if annual.GreaterThanOrEqual(minAnnualRate) && annual.LessThanOrEqual(maxAnnualRate) {
			rates = append(rates, annual.Abs())
		}
	}
	if len(rates) == 0 {
		return defaultDepreciationRate
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].LessThan(rates[j]) })
	return rates[len(rates)/2]
}

// NormalizePriceToYear adjusts a comparable's price from its own build year
// to the target year using the annual depreciation rate: going back in time
// appreciates, going forward depreciates.
func NormalizePriceToYear(price decimal.Decimal, fromYear, toYear int, rate decimal.Decimal) decimal.Decimal {
	delta := toYear - fromYear
	if delta == 0 {
		return price
	}
	n := decimal.NewFromInt(int64(abs(delta)))
	if delta > 0 {
		return price.Mul(one.Add(rate).Pow(n)).Round(0)
	}
	return price.Mul(one.Sub(rate).Pow(n)).Round(0)
}

var (
	missingFeaturePenalty = decimal.RequireFromString("0.05")
	extraFeatureBonus     = decimal.RequireFromString("0.02")
	equipmentScoreCap     = decimal.RequireFromString("1.2")
)

// EquipmentScore compares feature lists: 1.0 means the comparable matches
// the target's equipment, above 1.0 it is better equipped (capped at 1.2).
func EquipmentScore(target, comparable []string) decimal.Decimal {
	if len(target) == 0 {
		return one
	}
	targetSet := lo.SliceToMap(target, func(f string) (string, struct{}) {
		return strings.ToLower(f), struct{}{}
	})
	compSet := lo.SliceToMap(comparable, func(f string) (string, struct{}) {
		return strings.ToLower(f), struct{}{}
	})

	common, missing := 0, 0
	for f := range targetSet {
		if _, ok := compSet[f]; ok {
			common++
		} else {
			missing++
		}
	}
	extra := 0
	for f := range compSet {
		if _, ok := targetSet[f]; !ok {
			extra++
		}
	}

	base := decimal.NewFromInt(int64(common)).Div(decimal.NewFromInt(int64(len(targetSet))))
	score := base.
		Sub(decimal.NewFromInt(int64(missing)).Mul(missingFeaturePenalty)).
		Add(decimal.NewFromInt(int64(extra)).Mul(extraFeatureBonus))

	if score.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if score.GreaterThan(equipmentScoreCap) {
		return equipmentScoreCap
	}
	return score
}

var (
	yearDecay      = decimal.RequireFromString("0.3")
	mileageDecayKM = decimal.NewFromInt(50000)
	yearWeight     = decimal.RequireFromString("0.4")
	mileageWeight  = decimal.RequireFromString("0.4")
	equipWeight    = decimal.RequireFromString("0.2")
)

// ScoreComparables derives scores and normalized prices for every
// comparable, sorted best-first by relevance.
func ScoreComparables(target domain.Vehicle, comparables []domain.Comparable) []ScoredComparable {
	if len(comparables) == 0 {
		return nil
	}
	rate := AnnualDepreciationRate(comparables)

	scored := lo.Map(comparables, func(c domain.Comparable, _ int) ScoredComparable {
		compYear := c.Year
		if compYear == 0 {
			compYear = target.Year
		}

		yearDelta := compYear - target.Year
		yearScore := one.Div(one.Add(decimal.NewFromInt(int64(abs(yearDelta))).Mul(yearDecay)))

		mileageDelta := decimal.NewFromInt(int64(abs(c.MileageKM - target.MileageKM)))
		mileageScore := one.Div(one.Add(mileageDelta.Div(mileageDecayKM)))

		equipScore := EquipmentScore(target.Features, c.Equipment)

		relevance := yearScore.Mul(yearWeight).
			Add(mileageScore.Mul(mileageWeight)).
			Add(equipScore.Mul(equipWeight))

		return ScoredComparable{
			Comparable:      c,
			NormalizedPrice: NormalizePriceToYear(c.PriceEUR, compYear, target.Year, rate),
			RelevanceScore:  relevance.Round(4),
			EquipmentScore:  equipScore.Round(4),
			YearDelta:       yearDelta,
		}
	})

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore.GreaterThan(scored[j].RelevanceScore)
	})
	return scored
}

var (
	defaultConfidenceThreshold = decimal.RequireFromString("0.5")
	equipmentAdjustmentWeight  = decimal.RequireFromString("0.1")
	rangeSpread                = decimal.RequireFromString("0.15")
	confidenceSampleTarget     = decimal.NewFromInt(5)
	half                       = decimal.RequireFromString("0.5")
)

// EstimateMarketValue aggregates scored comparables into a single estimate
// with a range and a confidence figure. Comparables below the relevance
// threshold are ignored unless that leaves fewer than three, in which case
// the top five overall are used.
func EstimateMarketValue(scored []ScoredComparable) MarketValue {
	if len(scored) == 0 {
		return MarketValue{}
	}
	rate := AnnualDepreciationRate(lo.Map(scored, func(s ScoredComparable, _ int) domain.Comparable {
		return s.Comparable
	}))

	relevant := lo.Filter(scored, func(s ScoredComparable, _ int) bool {
		return s.RelevanceScore.GreaterThanOrEqual(defaultConfidenceThreshold)
	})
	if len(relevant) < 3 {
		relevant = scored
		if len(relevant) > 5 {
			relevant = relevant[:5]
		}
	}

	totalWeight, weighted := decimal.Zero, decimal.Zero
	equipSum := decimal.Zero
	for _, s := range relevant {
		totalWeight = totalWeight.Add(s.RelevanceScore)
		weighted = weighted.Add(s.NormalizedPrice.Mul(s.RelevanceScore))
		equipSum = equipSum.Add(s.EquipmentScore)
	}
	if totalWeight.IsZero() {
		return MarketValue{}
	}
	value := weighted.Div(totalWeight)

	n := decimal.NewFromInt(int64(len(relevant)))
	avgEquip := equipSum.Div(n)
	adjustment := avgEquip.Sub(one).Mul(value).Mul(equipmentAdjustmentWeight)
	estimated := value.Add(adjustment).Round(0)

	var low, high decimal.Decimal
	if len(relevant) >= 3 {
		prices := lo.Map(relevant, func(s ScoredComparable, _ int) decimal.Decimal {
			return s.NormalizedPrice
		})
		sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })
		low, high = prices[0], prices[len(prices)-1]
	} else {
		low = estimated.Mul(one.Sub(rangeSpread)).Round(0)
		high = estimated.Mul(one.Add(rangeSpread)).Round(0)
	}

	avgRelevance := totalWeight.Div(n)
	confidence := n.Div(confidenceSampleTarget).Mul(half).Add(avgRelevance.Mul(half))
	if confidence.GreaterThan(one) {
		confidence = one
	}

	return MarketValue{
		EstimatedValue:   estimated,
		ValueLow:         low,
		ValueHigh:        high,
		Confidence:       confidence.Round(2),
		ComparablesUsed:  len(relevant),
		DepreciationRate: rate.Mul(hundred).Round(1),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
