package echo

import (
	"strings"

	"github.com/cgoodale/echo-mod09ga/pkg/errors"
)

// HDFSuffix is the file suffix a link must carry to count as a granule
// download link
const HDFSuffix = ".hdf"

// GranuleFeed is the top-level response body of a granule search page
type GranuleFeed struct {
	Feed *Feed `json:"feed"`
}

// Feed wraps the list of granule entries
type Feed struct {
	Entry []Entry `json:"entry"`
}

// Entry is one granule result carrying zero or more links
type Entry struct {
	Links []Link `json:"links"`
}

// Link is a single hyperlink object in a granule entry
type Link struct {
	Href string `json:"href"`
}

// HDFLinks returns the hrefs ending in .hdf, preserving entry order and
// within-entry link order. A response without the expected feed/entry
// nesting is a parsing error rather than an empty result, so a changed
// API shape cannot silently drop a whole page.
func (f *GranuleFeed) HDFLinks() ([]string, error) {
	if f == nil || f.Feed == nil {
		return nil, errors.New(errors.ErrorTypeParsing, "response has no feed element", 0)
	}
	if f.Feed.Entry == nil {
		return nil, errors.New(errors.ErrorTypeParsing, "feed has no entry list", 0)
	}

	var hdfs []string
	for _, entry := range f.Feed.Entry {
		for _, link := range entry.Links {
			if strings.HasSuffix(link.Href, HDFSuffix) {
				hdfs = append(hdfs, link.Href)
			}
		}
	}

	return hdfs, nil
}
