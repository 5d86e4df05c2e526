// Package echo provides a client for the NASA ECHO catalog REST API.
//
// It covers the small slice of the API this tool needs: building granule
// search query strings for a MODIS tile, issuing paginated GET requests,
// and decoding the JSON feed of download links. Pagination state is
// carried by the Echo-Cursor-At-End response header rather than by the
// body.
package echo
