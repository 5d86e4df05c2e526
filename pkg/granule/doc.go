// Package granule extracts the acquisition date embedded in MOD09GA
// download URLs and filters URL lists by date or (year, day-of-year)
// ranges.
package granule
