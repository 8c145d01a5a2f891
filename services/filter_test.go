package services

import (
	"reflect"
	"testing"

	"laptop-dashboard/models"
)

func filterFixture() []*models.Listing {
	return []*models.Listing{
		{Brand: "HP", Model: "Pavilion 15", Platform: "Amazon", Price: 54999, City: "Bhopal"},
		{Brand: "Dell", Model: "Inspiron 14", Platform: "Flipkart", Price: 46999, City: "Bhopal"},
		{Brand: "Lenovo", Model: "IdeaPad 3", Platform: "Reliance Digital", Price: 39990, City: "Indore"},
		{Brand: "HP", Model: "Victus", Platform: "Flipkart", Price: 72999, City: "Bhopal"},
		{Brand: "Asus", Model: "VivoBook", Platform: "Amazon", Price: 46999, City: "Indore"},
	}
}

func fullRange(listings []*models.Listing) models.FilterCriteria {
	meta := BuildFilterMetadata(listings)
	return models.FilterCriteria{
		MinPrice: meta.PriceRange.Min,
		MaxPrice: meta.PriceRange.Max,
	}
}

func TestApplyFiltersIdentity(t *testing.T) {
	listings := filterFixture()
	got := ApplyFilters(listings, fullRange(listings))
	if !reflect.DeepEqual(got, listings) {
		t.Errorf("all-sentinel criteria with full price range must return the input unchanged")
	}
}

func TestApplyFiltersByBrand(t *testing.T) {
	listings := filterFixture()
	criteria := fullRange(listings)
	criteria.Brands = []string{"HP"}

	got := ApplyFilters(listings, criteria)
	if len(got) != 2 {
		t.Fatalf("expected 2 HP listings, got %d", len(got))
	}
	for _, l := range got {
		if l.Brand != "HP" {
			t.Errorf("unexpected brand %q in result", l.Brand)
		}
	}
}

func TestApplyFiltersPriceBoundsInclusive(t *testing.T) {
	listings := filterFixture()
	criteria := models.FilterCriteria{MinPrice: 46999, MaxPrice: 54999}

	got := ApplyFilters(listings, criteria)
	if len(got) != 3 {
		t.Fatalf("expected 3 listings in [46999, 54999], got %d", len(got))
	}
	for _, l := range got {
		if l.Price < 46999 || l.Price > 54999 {
			t.Errorf("price %.0f outside inclusive bounds", l.Price)
		}
	}
}

func TestApplyFiltersConjunctive(t *testing.T) {
	listings := filterFixture()
	criteria := fullRange(listings)
	criteria.Brands = []string{"HP", "Dell"}
	criteria.Platforms = []string{"Flipkart"}
	criteria.City = "Bhopal"

	got := ApplyFilters(listings, criteria)
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	for _, l := range got {
		if l.Platform != "Flipkart" || l.City != "Bhopal" {
			t.Errorf("listing %q fails a criterion", l.Model)
		}
	}
}

// Filters are independent predicates, so restricting one dimension at a time
// in any order must match the single conjunctive application.
func TestApplyFiltersOrderIndependent(t *testing.T) {
	listings := filterFixture()
	full := fullRange(listings)

	brand := full
	brand.Brands = []string{"HP", "Asus"}
	platform := full
	platform.Platforms = []string{"Amazon"}
	city := full
	city.City = "Indore"

	combined := full
	combined.Brands = brand.Brands
	combined.Platforms = platform.Platforms
	combined.City = city.City

	orderings := [][]models.FilterCriteria{
		{brand, platform, city},
		{city, brand, platform},
		{platform, city, brand},
	}
	want := ApplyFilters(listings, combined)

	for i, order := range orderings {
		got := listings
		for _, c := range order {
			got = ApplyFilters(got, c)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ordering %d: got %d rows, want %d", i, len(got), len(want))
		}
	}
}

func TestApplyFiltersIdempotent(t *testing.T) {
	listings := filterFixture()
	criteria := fullRange(listings)
	criteria.Brands = []string{"HP"}
	criteria.City = "Bhopal"

	once := ApplyFilters(listings, criteria)
	twice := ApplyFilters(once, criteria)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-applying the same criteria changed the result: %d vs %d rows",
			len(once), len(twice))
	}
}

func TestApplyFiltersEmptyResultIsValid(t *testing.T) {
	listings := filterFixture()
	criteria := fullRange(listings)
	criteria.City = "Mumbai"

	got := ApplyFilters(listings, criteria)
	if got == nil {
		t.Fatal("empty result must be a non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d rows", len(got))
	}
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	listings := filterFixture()
	snapshot := make([]models.Listing, len(listings))
	for i, l := range listings {
		snapshot[i] = *l
	}

	criteria := fullRange(listings)
	criteria.Brands = []string{"Dell"}
	ApplyFilters(listings, criteria)

	for i, l := range listings {
		if *l != snapshot[i] {
			t.Fatalf("input listing %d mutated", i)
		}
	}
}

func TestBuildFilterMetadata(t *testing.T) {
	meta := BuildFilterMetadata(filterFixture())

	wantBrands := []string{"Asus", "Dell", "HP", "Lenovo"}
	if !reflect.DeepEqual(meta.Brands, wantBrands) {
		t.Errorf("brands: got %v, want %v", meta.Brands, wantBrands)
	}
	wantPlatforms := []string{"Amazon", "Flipkart", "Reliance Digital"}
	if !reflect.DeepEqual(meta.Platforms, wantPlatforms) {
		t.Errorf("platforms: got %v, want %v", meta.Platforms, wantPlatforms)
	}
	if meta.PriceRange.Min != 39990 || meta.PriceRange.Max != 72999 {
		t.Errorf("price range: got [%.0f, %.0f], want [39990, 72999]",
			meta.PriceRange.Min, meta.PriceRange.Max)
	}
}

func TestBuildFilterMetadataEmpty(t *testing.T) {
	meta := BuildFilterMetadata(nil)
	if len(meta.Brands) != 0 || len(meta.Platforms) != 0 || len(meta.Cities) != 0 {
		t.Errorf("empty dataset must yield empty metadata lists")
	}
}
