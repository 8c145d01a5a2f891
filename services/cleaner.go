package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"laptop-dashboard/models"
	"laptop-dashboard/utils"
)

var (
	// numberRegexp captures a grouped or plain numeric amount
	numberRegexp = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)
	// ratingRegexp captures a numeric rating in the 0.0–5.0 range
	ratingRegexp = regexp.MustCompile(`\b([0-5](?:\.\d{1,2})?)\b`)
)

// dateLayouts are tried in order when parsing the optional date column.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	time.RFC3339,
}

// CurrencyFormat describes the price decoration of one locale: the symbols
// or prefixes to strip and the digit group separator. Indian-format rupee
// amounts like "₹1,23,456" reduce to plain digits under the default.
type CurrencyFormat struct {
	Symbols        []string
	GroupSeparator string
}

// DefaultCurrencyFormat covers the Indian Rupee notation found in the dataset.
func DefaultCurrencyFormat() CurrencyFormat {
	return CurrencyFormat{
		Symbols:        []string{"₹", "Rs.", "INR"},
		GroupSeparator: ",",
	}
}

// Cleaner transforms RawListings into clean, validated Listings.
type Cleaner struct {
	currency CurrencyFormat
	logger   *utils.Logger
}

// NewCleaner creates a Cleaner with the given currency format and logger.
func NewCleaner(currency CurrencyFormat, logger *utils.Logger) *Cleaner {
	if len(currency.Symbols) == 0 {
		currency = DefaultCurrencyFormat()
	}
	return &Cleaner{currency: currency, logger: logger}
}

// Clean processes raw listings and returns cleaned records. Rows without a
// parsable price are dropped; bad ratings and dates degrade to absent values.
func (c *Cleaner) Clean(raw []*models.RawListing) []*models.Listing {
	result := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		price, ok := c.parsePrice(r.RawPrice)
		if !ok {
			c.logger.Debug("[cleaner] Dropping row with unparsable price %q (%s %s)",
				r.RawPrice, r.Brand, r.Model)
			continue
		}

		result = append(result, &models.Listing{
			Brand:    normaliseText(r.Brand),
			Model:    normaliseText(r.Model),
			Platform: normaliseText(r.Platform),
			Price:    price,
			City:     normaliseText(r.City),
			Rating:   c.parseRating(r.RawRating),
			Date:     c.parseDate(r.RawDate),
		})
	}

	c.logger.Info("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// parsePrice strips currency decoration and group separators, then parses the
// remaining amount. Returns false when no valid non-negative number is left.
// Examples:
//
//	"₹1,23,456"  → 123456
//	"Rs. 54,999" → 54999
//	"56999.50"   → 56999.50
func (c *Cleaner) parsePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	for _, sym := range c.currency.Symbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	if c.currency.GroupSeparator != "" {
		s = strings.ReplaceAll(s, c.currency.GroupSeparator, "")
	}
	s = strings.TrimSpace(s)

	// Reject strings with leftover text ("N/A", "call for price") rather
	// than salvaging any digits they happen to contain.
	if s == "" || numberRegexp.FindString(s) != s {
		return 0, false
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// parseRating extracts a 0.0–5.0 numeric rating; anything else is absent.
// Plain numbers are parsed whole so an out-of-range "6.0" cannot leak a
// partial digit match; the regexp only handles decorated values like
// "4.5 (120 reviews)".
func (c *Cleaner) parseRating(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if val, err := strconv.ParseFloat(s, 64); err == nil {
		if val < 0 || val > 5 {
			return nil
		}
		return &val
	}

	match := ratingRegexp.FindStringSubmatch(s)
	if len(match) < 2 {
		return nil
	}
	val, err := strconv.ParseFloat(match[1], 64)
	if err != nil || val < 0 || val > 5 {
		return nil
	}
	return &val
}

// parseDate tries the known layouts; failures become absent, never fatal.
func (c *Cleaner) parseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
