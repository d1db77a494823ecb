// Package normalize folds the inconsistent vocabulary of listing sources
// (German, Dutch and English fuel and transmission labels, assorted date
// notations) into the strict enums the calculation layers expect. All
// string-matching heuristics live here, at the boundary, so the tax core
// never sees a raw marketplace value.
package normalize

import (
	"strings"
	"time"

	"github.com/rversteeg/importeer/internal/domain"
)

var fuelSynonyms = map[domain.FuelType][]string{
	domain.FuelDiesel:   {"diesel"},
	domain.FuelHybrid:   {"hybrid", "hybride", "plug-in", "phev"},
	domain.FuelElectric: {"electric", "elektrisch", "elektro", "ev"},
	domain.FuelLPG:      {"lpg", "autogas", "gas"},
	domain.FuelPetrol:   {"petrol", "benzine", "benzin", "gasoline", "super"},
}

// fuelOrder fixes the matching precedence: "plug-in hybrid (benzine)" is a
// hybrid, not petrol, and petrol terms are tried before LPG so that
// "gasoline" is not caught by the bare "gas" synonym.
var fuelOrder = []domain.FuelType{
	domain.FuelDiesel,
	domain.FuelHybrid,
	domain.FuelElectric,
	domain.FuelPetrol,
	domain.FuelLPG,
}

// FuelType maps a raw listing fuel string to a normalized enum value. The
// second return is false when nothing matched; callers decide whether to
// reject or default.
func FuelType(raw string) (domain.FuelType, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return "", false
	}
	for _, fuel := range fuelOrder {
		for _, term := range fuelSynonyms[fuel] {
			if strings.Contains(lower, term) {
				return fuel, true
			}
		}
	}
	return "", false
}

var automaticTerms = []string{"automatic", "automatik", "automaat", "dsg", "tiptronic", "s tronic", "auto"}
var manualTerms = []string{"manual", "manuell", "handgeschakeld", "schaltgetriebe"}

// Transmission maps a raw transmission string to "automatic" or "manual",
// defaulting to automatic when unknown.
func Transmission(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, term := range manualTerms {
		if strings.Contains(lower, term) {
			return "manual"
		}
	}
	for _, term := range automaticTerms {
		if strings.Contains(lower, term) {
			return "automatic"
		}
	}
	return "automatic"
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02-01-2006",
	"01/2006",
	"2006-01",
}

// Date parses the registration date notations seen across listing sources.
func Date(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
