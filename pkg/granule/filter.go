package granule

import (
	"strconv"
	"strings"
	"time"

	"github.com/cgoodale/echo-mod09ga/pkg/errors"
)

// Range is an inclusive integer range
type Range struct {
	Min int
	Max int
}

// Contains reports whether v falls within the range, inclusive on both
// ends
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// ParseHyphenRange parses an "A-B" string into the range (A, B). A
// single value with no hyphen yields the degenerate range (A, A).
// Anything other than one or two integer tokens is a validation error.
func ParseHyphenRange(s string) (Range, error) {
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return Range{}, errors.Validation("%s is not an integer range", s)
		}
		return Range{Min: v, Max: v}, nil
	case 2:
		min, err := strconv.Atoi(parts[0])
		if err != nil {
			return Range{}, errors.Validation("%s is not an integer range", s)
		}
		max, err := strconv.Atoi(parts[1])
		if err != nil {
			return Range{}, errors.Validation("%s is not an integer range", s)
		}
		return Range{Min: min, Max: max}, nil
	default:
		return Range{}, errors.Validation("%s is not a hyphen separated range", s)
	}
}

// FilterDateRange keeps the urls whose granule date falls within the
// inclusive bounds. A nil bound leaves that side open; with both bounds
// nil the input is returned unchanged. A url whose date cannot be
// extracted is a fatal error rather than a silent drop.
func FilterDateRange(urls []string, start, end *time.Time) ([]string, error) {
	if start == nil && end == nil {
		return urls, nil
	}

	var filtered []string
	for _, url := range urls {
		date, err := Date(url)
		if err != nil {
			return nil, err
		}
		if start != nil && date.Before(*start) {
			continue
		}
		if end != nil && date.After(*end) {
			continue
		}
		filtered = append(filtered, url)
	}

	return filtered, nil
}

// FilterYearDOY keeps the urls whose granule date has a (year,
// day-of-year) pair inside both inclusive ranges at once.
func FilterYearDOY(urls []string, doys, years Range) ([]string, error) {
	var filtered []string
	for _, url := range urls {
		date, err := Date(url)
		if err != nil {
			return nil, err
		}
		if years.Contains(date.Year()) && doys.Contains(date.YearDay()) {
			filtered = append(filtered, url)
		}
	}

	return filtered, nil
}
