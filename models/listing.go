package models

import "time"

// RawListing is one unprocessed row of the dataset exactly as it appears in
// the source file: every field still a string, prices with currency decoration.
type RawListing struct {
	Brand     string
	Model     string
	Platform  string
	RawPrice  string
	City      string
	RawRating string
	RawDate   string
}

// Listing is the cleaned record the filter and insight services operate on.
// Rating and Date are nil when the source value was missing or unparsable.
type Listing struct {
	Brand    string     `json:"brand"`
	Model    string     `json:"model"`
	Platform string     `json:"platform"`
	Price    float64    `json:"price"`
	City     string     `json:"city"`
	Rating   *float64   `json:"rating"`
	Date     *time.Time `json:"date,omitempty"`
}

// FilterCriteria describes one user interaction's filter state. Zero values
// mean "do not restrict": nil Brands/Platforms and empty City match everything.
// The price interval is always applied and must satisfy MinPrice <= MaxPrice.
type FilterCriteria struct {
	Brands    []string
	MinPrice  float64
	MaxPrice  float64
	Platforms []string
	City      string
}

// PlatformStats is a per-platform price summary, recomputed on every filter
// change. Never stored.
type PlatformStats struct {
	Platform string  `json:"platform"`
	AvgPrice float64 `json:"avg_price"`
	MinPrice float64 `json:"min_price"`
	Count    int     `json:"product_count"`
}

// PriceMetrics holds the headline numbers shown above the charts.
type PriceMetrics struct {
	Count int     `json:"count"`
	Avg   float64 `json:"avg_price"`
	Min   float64 `json:"min_price"`
	Max   float64 `json:"max_price"`
}

// PriceRange is the dataset-wide price interval used to seed the range slider.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata lists the distinct values of every filterable dimension so
// the frontend can build its widgets without a second pass over the data.
type FilterMetadata struct {
	Brands     []string   `json:"brands"`
	Platforms  []string   `json:"platforms"`
	Cities     []string   `json:"cities"`
	PriceRange PriceRange `json:"price_range"`
}

// PlatformAvg is one bar of the average-price-per-platform chart.
type PlatformAvg struct {
	Platform string  `json:"platform"`
	AvgPrice float64 `json:"avg_price"`
}

// BrandPrice is one raw point of the per-brand price distribution. The
// consumer computes quantiles and outliers itself, so no reduction happens here.
type BrandPrice struct {
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
}

// TrendPoint is one month of the price trend line.
type TrendPoint struct {
	Month    time.Time `json:"month"`
	AvgPrice float64   `json:"avg_price"`
}

// PriceTrend is the trend series plus a flag telling the consumer whether the
// points are real monthly means or the synthesized placeholder.
type PriceTrend struct {
	Points      []TrendPoint `json:"points"`
	Placeholder bool         `json:"placeholder"`
}

// PlatformCount is one slice of the market-share chart: listings per platform.
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

// RatingPricePoint is one marker of the rating-vs-price scatter. Size mirrors
// Price so the consumer can scale markers without re-deriving it.
type RatingPricePoint struct {
	Rating   float64 `json:"rating"`
	Price    float64 `json:"price"`
	Size     float64 `json:"size"`
	Platform string  `json:"platform"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
}
