// Package catalog drives the paginated granule search against the ECHO
// catalog and accumulates the extracted download links.
package catalog
