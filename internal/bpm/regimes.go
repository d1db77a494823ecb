package bpm

import "sort"

// TaxRegime is one complete, year-stamped tax configuration: the CO2 bracket
// schedule, the diesel surcharge rule, and whether electric vehicles were
// still exempt that year. Verified marks regimes whose figures come from a
// published Belastingdienst table rather than an interpolated estimate.
type TaxRegime struct {
	Year       int
	Label      string
	Brackets   []TaxBracket
	DieselRule DieselSurchargeRule
	EVExempt   bool
	Verified   bool
}

// wltpFloorYear is the first year with a WLTP-measured regime. Vehicles
// registered earlier start their keuzerecht window here.
const wltpFloorYear = 2020

// RegimeCatalog is an immutable, year-ordered set of regimes. The default
// catalog is process-wide configuration data; tests may construct synthetic
// catalogs instead.
type RegimeCatalog struct {
	regimes []TaxRegime
}

// NewRegimeCatalog builds a catalog from the given regimes, ordered by year
// ascending.
func NewRegimeCatalog(regimes ...TaxRegime) *RegimeCatalog {
	sorted := make([]TaxRegime, len(regimes))
	copy(sorted, regimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })
	return &RegimeCatalog{regimes: sorted}
}

// Len returns the number of regimes in the catalog.
func (rc *RegimeCatalog) Len() int { return len(rc.regimes) }

// All returns the regimes in ascending year order.
func (rc *RegimeCatalog) All() []TaxRegime { return rc.regimes }

// Newest returns the highest-year regime, the comparison baseline for every
// calculation.
func (rc *RegimeCatalog) Newest() (TaxRegime, bool) {
	if len(rc.regimes) == 0 {
		return TaxRegime{}, false
	}
	return rc.regimes[len(rc.regimes)-1], true
}

// Eligible returns the regimes the importer may legally choose from for a
// vehicle first registered in the given year: every regime from
// max(registrationYear, 2020) through the newest catalog year.
func (rc *RegimeCatalog) Eligible(registrationYear int) []TaxRegime {
	floor := registrationYear
	if floor < wltpFloorYear {
		floor = wltpFloorYear
	}
	var eligible []TaxRegime
	for _, r := range rc.regimes {
		if r.Year >= floor {
			eligible = append(eligible, r)
		}
	}
	return eligible
}

// DefaultCatalog returns the historical WLTP regimes 2020-2026. Bracket base
// amounts are cumulative sums of the preceding rows, so each table is
// continuous at its boundaries. 2021 and 2022 are interpolated between
// published years.
func DefaultCatalog() *RegimeCatalog {
	return NewRegimeCatalog(
		TaxRegime{
			Year:  2020,
			Label: "Tarief 2020 (tweede helft, WLTP)",
			Brackets: []TaxBracket{
				{0, upTo(86), 0, dec("1.00"), dec("366.00")},
				{87, upTo(111), 86, dec("58.33"), dec("452.00")},
				{112, upTo(173), 111, dec("130.77"), dec("1910.25")},
				{174, upTo(193), 173, dec("212.63"), dec("10017.99")},
				{194, nil, 193, dec("424.21"), dec("14270.59")},
			},
			DieselRule: DieselSurchargeRule{CO2Threshold: 77, CO2Subtract: 77, RatePerGram: dec("83.59")},
			EVExempt:   true,
			Verified:   true,
		},
		TaxRegime{
			Year:  2021,
			Label: "Tarief 2021 (interpolatie)",
			Brackets: []TaxBracket{
				{0, upTo(85), 0, dec("2.02"), dec("372.00")},
				{86, upTo(110), 85, dec("62.14"), dec("543.70")},
				{111, upTo(170), 110, dec("136.29"), dec("2097.20")},
				{171, upTo(190), 170, dec("222.13"), dec("10274.60")},
				{191, nil, 190, dec("442.94"), dec("14717.20")},
			},
			DieselRule: DieselSurchargeRule{CO2Threshold: 75, CO2Subtract: 75, RatePerGram: dec("86.67")},
			EVExempt:   true,
			Verified:   false,
		},
		TaxRegime{
			Year:  2022,
			Label: "Tarief 2022 (interpolatie)",
			Brackets: []TaxBracket{
				{0, upTo(84), 0, dec("2.28"), dec("386.00")},
				{85, upTo(108), 84, dec("65.17"), dec("577.52")},
				{109, upTo(167), 108, dec("142.71"), dec("2141.60")},
				{168, upTo(188), 167, dec("233.54"), dec("10561.49")},
				{189, nil, 188, dec("462.68"), dec("15465.83")},
			},
			DieselRule: DieselSurchargeRule{CO2Threshold: 73, CO2Subtract: 73, RatePerGram: dec("89.95")},
			EVExempt:   true,
			Verified:   false,
		},
		TaxRegime{
			Year:  2023,
			Label: "Tarief 2023",
			Brackets: []TaxBracket{
				{0, upTo(82), 0, dec("2.52"), dec("396.00")},
				{83, upTo(106), 82, dec("68.31"), dec("602.64")},
				{107, upTo(163), 106, dec("149.18"), dec("2242.08")},
				{164, upTo(185), 163, dec("244.74"), dec("10745.34")},
				{186, nil, 185, dec("484.12"), dec("16129.62")},
			},
			DieselRule: DieselSurchargeRule{CO2Threshold: 71, CO2Subtract: 71, RatePerGram: dec("94.30")},
			EVExempt:   true,
			Verified:   true,
		},
		TaxRegime{
			Year:  2024,
			Label: "Tarief 2024",
			Brackets: []TaxBracket{
				{0, upTo(80), 0, dec("2.77"), dec("412.00")},
				{81, upTo(103), 80, dec("71.48"), dec("633.60")},
				{104, upTo(159), 103, dec("155.93"), dec("2277.64")},
				{160, upTo(180), 159, dec("256.21"), dec("11009.72")},
				{181, nil, 180, dec("507.46"), dec("16390.13")},
			},
			DieselRule: DieselSurchargeRule{CO2Threshold: 70, CO2Subtract: 69, RatePerGram: dec("102.66")},
			EVExempt:   true,
			Verified:   true,
		},
		TaxRegime{
			Year:  2025,
			Label: "Tarief 2025",
			Brackets: []TaxBracket{
				{0, upTo(77), 0, dec("2.61"), dec("425.00")},
				{78, upTo(99), 77, dec("73.67"), dec("625.97")},
				{100, upTo(146), 99, dec("162.09"), dec("2246.71")},
				{147, upTo(164), 146, dec("270.88"), dec("9864.94")},
				{165, nil, 164, dec("539.52"), dec("14740.78")},
			},
			DieselRule: DieselSurchargeRule{CO2Threshold: 70, CO2Subtract: 69, RatePerGram: dec("106.10")},
			EVExempt:   false,
			Verified:   true,
		},
		TaxRegime{
			Year:  2026,
			Label: "Tarief 2026",
			Brackets: []TaxBracket{
				{0, upTo(75), 0, dec("2.04"), dec("438.30")},
				{76, upTo(97), 75, dec("72.05"), dec("591.30")},
				{98, upTo(135), 97, dec("168.20"), dec("2176.40")},
				{136, upTo(155), 135, dec("298.50"), dec("8568.00")},
				{156, nil, 155, dec("594.00"), dec("14538.00")},
			},
			DieselRule: DieselSurchargeRule{CO2Threshold: 70, CO2Subtract: 69, RatePerGram: dec("109.87")},
			EVExempt:   false,
			Verified:   true,
		},
	)
}
