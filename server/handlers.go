package server

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"laptop-dashboard/models"
	"laptop-dashboard/services"
)

// DashboardResponse is the full payload one filter interaction produces:
// headline metrics, the top-2 platform recommendation, the five chart views
// and the sorted product table. Notices carry the user-visible warnings for
// the empty-result and missing-rating cases; charts are omitted rather than
// rendered empty.
type DashboardResponse struct {
	Metrics     models.PriceMetrics    `json:"metrics"`
	Recommended []models.PlatformStats `json:"recommended_platforms,omitempty"`
	Charts      *ChartViews            `json:"charts,omitempty"`
	Listings    []*models.Listing      `json:"listings,omitempty"`
	Notices     []string               `json:"notices,omitempty"`
}

// ChartViews groups the tidy tables, one per visualization.
type ChartViews struct {
	PlatformAverages  []models.PlatformAvg      `json:"platform_averages"`
	BrandDistribution []models.BrandPrice       `json:"brand_distribution"`
	PriceTrend        models.PriceTrend         `json:"price_trend"`
	MarketShare       []models.PlatformCount    `json:"market_share"`
	RatingVsPrice     []models.RatingPricePoint `json:"rating_vs_price,omitempty"`
}

// Healthz reports liveness.
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "listings": len(s.dataset)})
}

// Filters returns the distinct filter values and the dataset price bounds.
func (s *Server) Filters(c *gin.Context) {
	c.JSON(http.StatusOK, s.meta)
}

// Dashboard applies the query's filter criteria and returns the recomputed
// metrics and chart views. Absent parameters mean "select all"; absent price
// bounds default to the dataset's own min/max.
func (s *Server) Dashboard(c *gin.Context) {
	criteria, err := s.parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := services.ApplyFilters(s.dataset, criteria)
	resp := DashboardResponse{Metrics: s.insights.Metrics(filtered)}

	if len(filtered) == 0 {
		resp.Notices = append(resp.Notices,
			"No data available for the selected filters. Please adjust your filter criteria.")
		c.JSON(http.StatusOK, resp)
		return
	}

	ranking := s.insights.PlatformRanking(filtered)
	resp.Recommended = s.insights.CheapestPlatforms(ranking, 2)

	charts := &ChartViews{
		PlatformAverages:  services.PlatformAverages(filtered),
		BrandDistribution: services.BrandDistribution(filtered),
		PriceTrend:        services.PriceTrend(filtered),
		MarketShare:       services.MarketShare(filtered),
	}
	scatter, err := services.RatingVsPrice(filtered)
	if err != nil {
		if !errors.Is(err, services.ErrRatingUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.Notices = append(resp.Notices,
			"Rating data not available for scatter plot analysis.")
	} else {
		charts.RatingVsPrice = scatter
	}
	resp.Charts = charts

	table := make([]*models.Listing, len(filtered))
	copy(table, filtered)
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Price < table[j].Price
	})
	resp.Listings = table

	c.JSON(http.StatusOK, resp)
}

// parseCriteria maps query parameters onto FilterCriteria. Missing list
// parameters stay nil (the select-all sentinel); missing price bounds fall
// back to the dataset bounds so the interval is always valid.
func (s *Server) parseCriteria(c *gin.Context) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Brands:    splitParam(c.Query("brands")),
		Platforms: splitParam(c.Query("platforms")),
		City:      strings.TrimSpace(c.Query("city")),
		MinPrice:  s.meta.PriceRange.Min,
		MaxPrice:  s.meta.PriceRange.Max,
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("min_price must be a number")
		}
		criteria.MinPrice = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return criteria, errors.New("max_price must be a number")
		}
		criteria.MaxPrice = v
	}
	if criteria.MinPrice > criteria.MaxPrice {
		return criteria, errors.New("min_price must not exceed max_price")
	}
	return criteria, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
