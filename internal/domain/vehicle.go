package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelType is a normalized fuel classification. Raw listing strings
// (German/Dutch/English synonyms) are folded into one of these values at the
// boundary before any calculation sees them.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
	FuelLPG      FuelType = "lpg"
)

// Valid reports whether f is one of the recognized fuel types.
func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid, FuelLPG:
		return true
	}
	return false
}

// Vehicle describes a listing on the German market as it enters the
// analysis, after boundary normalization.
type Vehicle struct {
	Make              string          `yaml:"make" json:"make"`
	Model             string          `yaml:"model" json:"model"`
	Year              int             `yaml:"year" json:"year"`
	MileageKM         int             `yaml:"mileage_km" json:"mileageKm"`
	PriceEUR          decimal.Decimal `yaml:"price_eur" json:"priceEur"`
	FuelType          FuelType        `yaml:"fuel_type" json:"fuelType"`
	Transmission      string          `yaml:"transmission" json:"transmission"`
	CO2GKM            int             `yaml:"co2_gkm" json:"co2Gkm"`
	FirstRegistration time.Time       `yaml:"first_registration" json:"firstRegistration"`
	ListingURL        string          `yaml:"listing_url,omitempty" json:"listingUrl,omitempty"`
	Source            string          `yaml:"source,omitempty" json:"source,omitempty"`
	Title             string          `yaml:"title,omitempty" json:"title,omitempty"`
	Features          []string        `yaml:"features,omitempty" json:"features,omitempty"`
}
