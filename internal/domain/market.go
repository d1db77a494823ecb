package domain

import "github.com/shopspring/decimal"

// Comparable is one price point found on the Dutch market.
type Comparable struct {
	PriceEUR   decimal.Decimal `yaml:"price_eur" json:"priceEur"`
	MileageKM  int             `yaml:"mileage_km" json:"mileageKm"`
	Year       int             `yaml:"year" json:"year"`
	Title      string          `yaml:"title,omitempty" json:"title,omitempty"`
	ListingURL string          `yaml:"listing_url,omitempty" json:"listingUrl,omitempty"`
	Source     string          `yaml:"source,omitempty" json:"source,omitempty"`
	Location   string          `yaml:"location,omitempty" json:"location,omitempty"`
	Equipment  []string        `yaml:"equipment,omitempty" json:"equipment,omitempty"`
}

// MarketStats summarizes comparable asking prices after outlier filtering.
type MarketStats struct {
	Count       int             `json:"count"`
	AvgPrice    decimal.Decimal `json:"avgPrice"`
	MedianPrice decimal.Decimal `json:"medianPrice"`
	MinPrice    decimal.Decimal `json:"minPrice"`
	MaxPrice    decimal.Decimal `json:"maxPrice"`
}

// Valuation is an estimated Dutch retail value for a vehicle. The source
// field records which valuer produced it (market model, external oracle).
type Valuation struct {
	RetailPrice    decimal.Decimal `json:"estimatedRetailPrice"`
	QuickSalePrice decimal.Decimal `json:"estimatedQuickSalePrice"`
	Confidence     decimal.Decimal `json:"confidence"`
	Reasoning      string          `json:"reasoning,omitempty"`
	Pros           []string        `json:"pros,omitempty"`
	Cons           []string        `json:"cons,omitempty"`
	Source         string          `json:"source,omitempty"`
}
