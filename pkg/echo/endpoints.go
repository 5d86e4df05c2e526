package echo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cgoodale/echo-mod09ga/pkg/errors"
)

const (
	// HorizontalAttribute is the ECHO granule attribute holding the
	// horizontal tile number of the MODIS sinusoidal grid
	HorizontalAttribute = "HORIZONTALTILENUMBER"

	// VerticalAttribute is the ECHO granule attribute holding the
	// vertical tile number of the MODIS sinusoidal grid
	VerticalAttribute = "VERTICALTILENUMBER"
)

// tilePattern matches tile identifiers of the form h##v##, e.g. h09v05
var tilePattern = regexp.MustCompile(`^h(\d{2})v(\d{2})$`)

// TileID identifies one cell of the MODIS sinusoidal grid
type TileID struct {
	Horizontal int
	Vertical   int
}

// String formats the tile back into its h##v## form
func (t TileID) String() string {
	return fmt.Sprintf("h%02dv%02d", t.Horizontal, t.Vertical)
}

// ParseTileID parses and validates an h##v## tile identifier. It returns
// a validation error for anything that does not match the pattern, so
// callers can reject bad input before touching the network.
func ParseTileID(s string) (TileID, error) {
	m := tilePattern.FindStringSubmatch(s)
	if m == nil {
		return TileID{}, errors.Validation("%s does not match the h##v## tile format", s)
	}

	horizontal, err := strconv.Atoi(m[1])
	if err != nil {
		return TileID{}, errors.Validation("invalid horizontal tile number in %s", s)
	}
	vertical, err := strconv.Atoi(m[2])
	if err != nil {
		return TileID{}, errors.Validation("invalid vertical tile number in %s", s)
	}

	return TileID{Horizontal: horizontal, Vertical: vertical}, nil
}

// BaseQuery returns the dataset search clause that every tile query
// starts from
func BaseQuery(dataset string) string {
	return "dataset_id=" + dataset
}

// appendAttribute appends one granule attribute clause to the query.
// The clause is three key=value pairs in fixed order (name, type, value);
// the ECHO API requires repeated attribute[] parameters, so the query is
// built as a plain string rather than through url.Values.
func appendAttribute(query, name string, value int) string {
	attName := fmt.Sprintf("attribute[][name]=%s", name)
	attType := "attribute[][type]=int"
	attValue := fmt.Sprintf("attribute[][value]=%d", value)
	return strings.Join([]string{query, attName, attType, attValue}, "&")
}

// SetHorizontalTile returns a new query with a HORIZONTALTILENUMBER
// attribute clause appended
func SetHorizontalTile(query string, value int) string {
	return appendAttribute(query, HorizontalAttribute, value)
}

// SetVerticalTile returns a new query with a VERTICALTILENUMBER
// attribute clause appended
func SetVerticalTile(query string, value int) string {
	return appendAttribute(query, VerticalAttribute, value)
}

// BuildTileQuery appends both tile number clauses to the base query.
// The horizontal clause must come before the vertical one for wire
// compatibility with the catalog.
func BuildTileQuery(query string, tile TileID) string {
	query = SetHorizontalTile(query, tile.Horizontal)
	query = SetVerticalTile(query, tile.Vertical)
	return query
}

// PagedURL builds the full request URL for one page of results
func PagedURL(baseURL, query string, pageSize, pageNum int) string {
	pageParams := fmt.Sprintf("page_size=%d&page_num=%d", pageSize, pageNum)
	return baseURL + strings.Join([]string{query, pageParams}, "&")
}
