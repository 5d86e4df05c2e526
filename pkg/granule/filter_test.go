package granule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/cgoodale/echo-mod09ga/pkg/errors"
)

func TestParseHyphenRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Range
	}{
		{input: "150-300", expected: Range{Min: 150, Max: 300}},
		{input: "150", expected: Range{Min: 150, Max: 150}},
		{input: "2000-2005", expected: Range{Min: 2000, Max: 2005}},
		{input: "1-366", expected: Range{Min: 1, Max: 366}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseHyphenRange(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestParseHyphenRangeInvalid(t *testing.T) {
	for _, bad := range []string{"", "a-b", "150-", "-300", "1-2-3", "1.5-2"} {
		t.Run(bad, func(t *testing.T) {
			_, err := ParseHyphenRange(bad)
			require.Error(t, err)

			var apiErr *errs.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, errs.ErrorTypeValidation, apiErr.Type)
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: 50, Max: 150}
	assert.True(t, r.Contains(50))
	assert.True(t, r.Contains(100))
	assert.True(t, r.Contains(150))
	assert.False(t, r.Contains(49))
	assert.False(t, r.Contains(151))
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestFilterDateRange(t *testing.T) {
	urls := []string{
		granuleURL(t, time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)),
		granuleURL(t, time.Date(2013, 6, 15, 0, 0, 0, 0, time.UTC)),
		granuleURL(t, time.Date(2013, 12, 31, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("both bounds inclusive", func(t *testing.T) {
		filtered, err := FilterDateRange(urls, datePtr(2013, 1, 1), datePtr(2013, 6, 15))
		require.NoError(t, err)
		assert.Equal(t, urls[:2], filtered)
	})

	t.Run("start only", func(t *testing.T) {
		filtered, err := FilterDateRange(urls, datePtr(2013, 6, 15), nil)
		require.NoError(t, err)
		assert.Equal(t, urls[1:], filtered)
	})

	t.Run("end only", func(t *testing.T) {
		filtered, err := FilterDateRange(urls, nil, datePtr(2013, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, urls[:1], filtered)
	})

	t.Run("no bounds returns input unchanged", func(t *testing.T) {
		filtered, err := FilterDateRange(urls, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, urls, filtered)
	})

	t.Run("empty window", func(t *testing.T) {
		filtered, err := FilterDateRange(urls, datePtr(2014, 1, 1), datePtr(2014, 12, 31))
		require.NoError(t, err)
		assert.Empty(t, filtered)
	})

	t.Run("unparseable url is fatal", func(t *testing.T) {
		bad := append([]string{"http://example.com/not-a-granule.hdf"}, urls...)
		_, err := FilterDateRange(bad, datePtr(2013, 1, 1), nil)
		require.Error(t, err)
	})
}

func TestFilterYearDOY(t *testing.T) {
	// (year, doy) pairs (2012,100), (2013,50), (2013,200)
	urls := []string{
		granuleURL(t, time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 99)),
		granuleURL(t, time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 49)),
		granuleURL(t, time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 199)),
	}

	t.Run("both ranges must match", func(t *testing.T) {
		filtered, err := FilterYearDOY(urls,
			Range{Min: 50, Max: 150},
			Range{Min: 2013, Max: 2013})
		require.NoError(t, err)
		assert.Equal(t, []string{urls[1]}, filtered)
	})

	t.Run("wide ranges keep everything", func(t *testing.T) {
		filtered, err := FilterYearDOY(urls,
			Range{Min: 1, Max: 366},
			Range{Min: 2000, Max: 2020})
		require.NoError(t, err)
		assert.Equal(t, urls, filtered)
	})

	t.Run("disjoint ranges keep nothing", func(t *testing.T) {
		filtered, err := FilterYearDOY(urls,
			Range{Min: 300, Max: 366},
			Range{Min: 2013, Max: 2013})
		require.NoError(t, err)
		assert.Empty(t, filtered)
	})

	t.Run("unparseable url is fatal", func(t *testing.T) {
		_, err := FilterYearDOY([]string{"http://example.com/junk"},
			Range{Min: 1, Max: 366}, Range{Min: 2000, Max: 2020})
		require.Error(t, err)
	})
}
