package services

import (
	"sort"

	"laptop-dashboard/models"
	"laptop-dashboard/utils"
)

// InsightService computes the summary statistics shown above the charts.
// Everything here is derived from the current filtered view and recomputed on
// every filter change; nothing is stored.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// PlatformRanking groups listings by platform and reduces each group to
// (mean price, min price, count), rounded to 2 decimals. The result is sorted
// ascending by mean price, ties broken by platform name so the ranking is
// deterministic.
func (s *InsightService) PlatformRanking(listings []*models.Listing) []models.PlatformStats {
	type acc struct {
		total float64
		min   float64
		count int
	}
	groups := make(map[string]*acc)

	for _, l := range listings {
		g, ok := groups[l.Platform]
		if !ok {
			groups[l.Platform] = &acc{total: l.Price, min: l.Price, count: 1}
			continue
		}
		g.total += l.Price
		g.count++
		if l.Price < g.min {
			g.min = l.Price
		}
	}

	stats := make([]models.PlatformStats, 0, len(groups))
	for platform, g := range groups {
		stats = append(stats, models.PlatformStats{
			Platform: platform,
			AvgPrice: round2(g.total / float64(g.count)),
			MinPrice: round2(g.min),
			Count:    g.count,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].AvgPrice == stats[j].AvgPrice {
			return stats[i].Platform < stats[j].Platform
		}
		return stats[i].AvgPrice < stats[j].AvgPrice
	})
	return stats
}

// CheapestPlatforms returns the first n entries of the ranking — the
// dashboard's "recommended platforms" block uses n = 2.
func (s *InsightService) CheapestPlatforms(ranking []models.PlatformStats, n int) []models.PlatformStats {
	if len(ranking) > n {
		return ranking[:n]
	}
	return ranking
}

// Metrics computes the headline count/avg/min/max over the filtered prices.
// An empty view yields the zero value, which the caller renders as ₹0.
func (s *InsightService) Metrics(listings []*models.Listing) models.PriceMetrics {
	m := models.PriceMetrics{Count: len(listings)}
	if len(listings) == 0 {
		return m
	}

	m.Min = listings[0].Price
	m.Max = listings[0].Price
	var total float64
	for _, l := range listings {
		total += l.Price
		if l.Price < m.Min {
			m.Min = l.Price
		}
		if l.Price > m.Max {
			m.Max = l.Price
		}
	}
	m.Avg = round2(total / float64(len(listings)))
	m.Min = round2(m.Min)
	m.Max = round2(m.Max)
	return m
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
