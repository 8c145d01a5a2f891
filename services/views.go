package services

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"laptop-dashboard/models"
)

// ErrRatingUnavailable signals that no listing in the filtered view carries a
// rating. The caller shows a notice instead of a scatter chart.
var ErrRatingUnavailable = errors.New("rating data not available")

// placeholderSeed fixes the synthesized trend series so it is identical on
// every call and across runs.
const placeholderSeed = 1

// PlatformAverages builds the bar-chart view: one (platform, mean price) row
// per platform, cheapest first.
func PlatformAverages(listings []*models.Listing) []models.PlatformAvg {
	type acc struct {
		total float64
		count int
	}
	groups := make(map[string]*acc)
	for _, l := range listings {
		g, ok := groups[l.Platform]
		if !ok {
			groups[l.Platform] = &acc{total: l.Price, count: 1}
			continue
		}
		g.total += l.Price
		g.count++
	}

	rows := make([]models.PlatformAvg, 0, len(groups))
	for platform, g := range groups {
		rows = append(rows, models.PlatformAvg{
			Platform: platform,
			AvgPrice: round2(g.total / float64(g.count)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AvgPrice == rows[j].AvgPrice {
			return rows[i].Platform < rows[j].Platform
		}
		return rows[i].AvgPrice < rows[j].AvgPrice
	})
	return rows
}

// BrandDistribution builds the box-plot view: every (brand, price) pair in
// input order, unreduced, so the consumer can derive quantiles and outliers.
func BrandDistribution(listings []*models.Listing) []models.BrandPrice {
	rows := make([]models.BrandPrice, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, models.BrandPrice{Brand: l.Brand, Price: l.Price})
	}
	return rows
}

// PriceTrend builds the line-chart view: mean price per calendar month,
// chronological. When no listing has a usable date the series falls back to a
// fixed 12-month placeholder for 2024 so the chart renders something stable.
func PriceTrend(listings []*models.Listing) models.PriceTrend {
	type acc struct {
		total float64
		count int
	}
	months := make(map[time.Time]*acc)
	for _, l := range listings {
		if l.Date == nil {
			continue
		}
		month := time.Date(l.Date.Year(), l.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		g, ok := months[month]
		if !ok {
			months[month] = &acc{total: l.Price, count: 1}
			continue
		}
		g.total += l.Price
		g.count++
	}

	if len(months) == 0 {
		return placeholderTrend()
	}

	points := make([]models.TrendPoint, 0, len(months))
	for month, g := range months {
		points = append(points, models.TrendPoint{
			Month:    month,
			AvgPrice: round2(g.total / float64(g.count)),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	return models.PriceTrend{Points: points}
}

func placeholderTrend() models.PriceTrend {
	rng := rand.New(rand.NewSource(placeholderSeed))
	points := make([]models.TrendPoint, 0, 12)
	for m := time.January; m <= time.December; m++ {
		points = append(points, models.TrendPoint{
			Month:    time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC),
			AvgPrice: float64(40000 + rng.Intn(40000)),
		})
	}
	return models.PriceTrend{Points: points, Placeholder: true}
}

// MarketShare builds the pie-chart view: listings per platform, largest share
// first, ties broken by platform name.
func MarketShare(listings []*models.Listing) []models.PlatformCount {
	counts := make(map[string]int)
	for _, l := range listings {
		counts[l.Platform]++
	}

	rows := make([]models.PlatformCount, 0, len(counts))
	for platform, count := range counts {
		rows = append(rows, models.PlatformCount{Platform: platform, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count == rows[j].Count {
			return rows[i].Platform < rows[j].Platform
		}
		return rows[i].Count > rows[j].Count
	})
	return rows
}

// RatingVsPrice builds the scatter view from listings that carry a rating.
// Returns ErrRatingUnavailable when none do, so the caller can show a notice
// instead of feeding the chart a malformed series.
func RatingVsPrice(listings []*models.Listing) ([]models.RatingPricePoint, error) {
	rows := make([]models.RatingPricePoint, 0, len(listings))
	for _, l := range listings {
		if l.Rating == nil {
			continue
		}
		rows = append(rows, models.RatingPricePoint{
			Rating:   *l.Rating,
			Price:    l.Price,
			Size:     l.Price,
			Platform: l.Platform,
			Brand:    l.Brand,
			Model:    l.Model,
		})
	}
	if len(listings) > 0 && len(rows) == 0 {
		return nil, ErrRatingUnavailable
	}
	return rows, nil
}
