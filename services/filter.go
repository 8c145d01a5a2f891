package services

import (
	"sort"

	"laptop-dashboard/models"
)

// ApplyFilters returns the listings matching every active criterion. The
// input is never mutated; the result is always a fresh slice. An empty result
// is valid output — callers decide whether to warn and skip the charts.
//
// Brand, platform and city restrictions are optional (zero value = match
// all); the price interval is always applied, bounds inclusive. Predicates
// are independent, so application order never changes the result.
func ApplyFilters(listings []*models.Listing, criteria models.FilterCriteria) []*models.Listing {
	brands := toSet(criteria.Brands)
	platforms := toSet(criteria.Platforms)

	result := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Price < criteria.MinPrice || l.Price > criteria.MaxPrice {
			continue
		}
		if brands != nil {
			if _, ok := brands[l.Brand]; !ok {
				continue
			}
		}
		if platforms != nil {
			if _, ok := platforms[l.Platform]; !ok {
				continue
			}
		}
		if criteria.City != "" && l.City != criteria.City {
			continue
		}
		result = append(result, l)
	}
	return result
}

// BuildFilterMetadata derives the filter widget inputs from the full dataset:
// sorted distinct brands, platforms and cities, and the dataset price bounds.
// The price bounds are what callers use to build a valid full-range interval.
func BuildFilterMetadata(listings []*models.Listing) models.FilterMetadata {
	meta := models.FilterMetadata{
		Brands:    []string{},
		Platforms: []string{},
		Cities:    []string{},
	}
	if len(listings) == 0 {
		return meta
	}

	brands := make(map[string]struct{})
	platforms := make(map[string]struct{})
	cities := make(map[string]struct{})

	meta.PriceRange.Min = listings[0].Price
	meta.PriceRange.Max = listings[0].Price
	for _, l := range listings {
		brands[l.Brand] = struct{}{}
		platforms[l.Platform] = struct{}{}
		cities[l.City] = struct{}{}
		if l.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = l.Price
		}
		if l.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = l.Price
		}
	}

	meta.Brands = sortedKeys(brands)
	meta.Platforms = sortedKeys(platforms)
	meta.Cities = sortedKeys(cities)
	return meta
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
