package storage

import (
	"errors"
	"testing"

	"laptop-dashboard/models"
)

func TestCacheFillsOncePerKey(t *testing.T) {
	cache := NewCache()
	calls := 0
	fill := func() ([]*models.Listing, error) {
		calls++
		return []*models.Listing{{Brand: "HP", Price: 54999}}, nil
	}

	first, err := cache.GetOrFill("data/laptop_prices.csv", fill)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cache.GetOrFill("data/laptop_prices.csv", fill)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
	if &first[0] != &second[0] {
		t.Error("cache must return the same slice for the same key")
	}
}

func TestCacheSeparateKeys(t *testing.T) {
	cache := NewCache()
	calls := 0
	fill := func() ([]*models.Listing, error) {
		calls++
		return nil, nil
	}

	if _, err := cache.GetOrFill("a.csv", fill); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.GetOrFill("b.csv", fill); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("fill called %d times for 2 keys, want 2", calls)
	}
}

func TestCacheErrorNotCached(t *testing.T) {
	cache := NewCache()
	boom := errors.New("transient")
	calls := 0

	_, err := cache.GetOrFill("k", func() ([]*models.Listing, error) {
		calls++
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fill error, got %v", err)
	}

	got, err := cache.GetOrFill("k", func() ([]*models.Listing, error) {
		calls++
		return []*models.Listing{{Brand: "Dell"}}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("failed fill must not be cached (calls = %d)", calls)
	}
	if len(got) != 1 {
		t.Errorf("retry result not returned: %v", got)
	}
}
