package granule

import (
	"strings"
	"time"

	"github.com/cgoodale/echo-mod09ga/pkg/errors"
)

// The granule date is embedded in the download URL as a path segment
// between two fixed markers, e.g.
//
//	http://e4ftl01.cr.usgs.gov/MODIS_Dailies_A/MOLT/MOD09GA.005/2013.08.03/MOD09GA.A2013215.h10v03.005.2013217100343.hdf
//
// Both markers and the date layout are part of the cataloging system's
// URL contract and must match it exactly.
const (
	dateMarkerBefore = "/MOD09GA.005/"
	dateMarkerAfter  = "/MOD09GA.A"
	dateLayout       = "2006.01.02"
)

// BoundLayout is the YYYYMMDD layout of user-supplied date bounds
const BoundLayout = "20060102"

// Date parses the acquisition date out of a granule download URL. It
// returns a parsing error if either marker is missing or the segment
// between them is not a YYYY.MM.DD date.
func Date(url string) (time.Time, error) {
	_, after, found := strings.Cut(url, dateMarkerBefore)
	if !found {
		return time.Time{}, errors.New(errors.ErrorTypeParsing,
			"url is missing the "+dateMarkerBefore+" marker: "+url, 0)
	}

	dateString, _, found := strings.Cut(after, dateMarkerAfter)
	if !found {
		return time.Time{}, errors.New(errors.ErrorTypeParsing,
			"url is missing the "+dateMarkerAfter+" marker: "+url, 0)
	}

	date, err := time.Parse(dateLayout, dateString)
	if err != nil {
		return time.Time{}, errors.New(errors.ErrorTypeParsing,
			"url date segment "+dateString+" is not a YYYY.MM.DD date", 0)
	}

	return date, nil
}

// ParseBound parses a YYYYMMDD range bound into a date
func ParseBound(s string) (time.Time, error) {
	date, err := time.Parse(BoundLayout, s)
	if err != nil {
		return time.Time{}, errors.Validation("%s is not a YYYYMMDD date", s)
	}
	return date, nil
}
