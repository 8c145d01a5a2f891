package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"laptop-dashboard/models"
)

// ErrDatasetNotFound signals a missing source file. Callers degrade to a
// user-visible message instead of crashing.
var ErrDatasetNotFound = errors.New("dataset not found")

// CSVSource reads raw listings from a delimited file with a header row.
// Expected columns: brand, model, platform, price, city, rating and an
// optional date column. Column order is free; unknown columns are ignored.
type CSVSource struct {
	path string
}

// NewCSVSource returns a CSVSource for the given path. The file is opened
// lazily on Fetch so a missing file surfaces as ErrDatasetNotFound there.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Fetch reads the whole file into raw listings. Rows shorter than the header
// are skipped; field-level validation is the cleaner's job.
func (s *CSVSource) Fetch() ([]*models.RawListing, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("csv: open %q: %w", s.path, ErrDatasetNotFound)
		}
		return nil, fmt.Errorf("csv: open %q: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var listings []*models.RawListing
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row: %w", err)
		}

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		listings = append(listings, &models.RawListing{
			Brand:     field("brand"),
			Model:     field("model"),
			Platform:  field("platform"),
			RawPrice:  field("price"),
			City:      field("city"),
			RawRating: field("rating"),
			RawDate:   field("date"),
		})
	}

	return listings, nil
}

// Close is a no-op; the file handle only lives for the duration of Fetch.
func (s *CSVSource) Close() error { return nil }
