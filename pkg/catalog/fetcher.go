package catalog

import (
	"errors"
	"fmt"

	"github.com/cgoodale/echo-mod09ga/pkg/config"
	"github.com/cgoodale/echo-mod09ga/pkg/echo"
	errs "github.com/cgoodale/echo-mod09ga/pkg/errors"
	"github.com/cgoodale/echo-mod09ga/pkg/logger"
	"github.com/cgoodale/echo-mod09ga/pkg/retry"
)

// Client is the slice of the catalog API client the fetcher needs
type Client interface {
	FetchPage(url string) (*echo.GranuleFeed, bool, error)
}

// Fetcher pages through granule search results and collects download links
type Fetcher struct {
	client Client
	cfg    *config.Config
	logger logger.Logger
}

// New creates a Fetcher using the given catalog client
func New(client Client, cfg *config.Config, log logger.Logger) *Fetcher {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Fetcher{
		client: client,
		cfg:    cfg,
		logger: log,
	}
}

// FetchAll issues paginated requests for the given search query and
// returns all .hdf links across all pages, preserving page order and
// within-page order.
//
// A page that keeps failing after MaxRetries attempts is logged and
// skipped so one bad page cannot sink the whole run; parse errors are
// fatal because they mean the response shape changed, not that the
// server hiccuped. The loop stops when the catalog reports its cursor
// at end, or at MaxPages as a guard against an API that never does.
func (f *Fetcher) FetchAll(query string) ([]string, error) {
	var allLinks []string

	retryCfg := &retry.Config{
		MaxAttempts: f.cfg.Fetch.MaxRetries,
		Backoff: &retry.ExponentialBackoff{
			BaseDelay:    f.cfg.Fetch.RetryDelay,
			MaxDelay:     10 * f.cfg.Fetch.RetryDelay,
			Multiplier:   2.0,
			JitterFactor: 0.1,
		},
		RetryIf: retry.DefaultRetryIf,
		Logger:  f.logger,
	}

	atEnd := false
	for pageNum := 1; pageNum <= f.cfg.Fetch.MaxPages; pageNum++ {
		pageURL := echo.PagedURL(f.cfg.Catalog.BaseURL, query, f.cfg.Catalog.PageSize, pageNum)

		f.logger.DebugWithFields("fetching result page", map[string]interface{}{
			"page": pageNum,
			"url":  pageURL,
		})

		var feed *echo.GranuleFeed
		err := retry.Do(func() error {
			var ferr error
			feed, atEnd, ferr = f.client.FetchPage(pageURL)
			return ferr
		}, retryCfg)
		if err != nil {
			if isFatal(err) {
				return nil, fmt.Errorf("fetching page %d: %w", pageNum, err)
			}
			f.logger.WarnWithFields("skipping page after repeated failures", map[string]interface{}{
				"page":  pageNum,
				"error": err.Error(),
			})
			continue
		}

		links, err := feed.HDFLinks()
		if err != nil {
			return nil, fmt.Errorf("parsing page %d: %w", pageNum, err)
		}
		allLinks = append(allLinks, links...)

		f.logger.InfoWithFields("result page fetched", map[string]interface{}{
			"page":        pageNum,
			"links":       len(links),
			"total_links": len(allLinks),
			"at_end":      atEnd,
		})

		if atEnd {
			return allLinks, nil
		}
	}

	f.logger.WarnWithFields("stopped at page ceiling before cursor reached end", map[string]interface{}{
		"max_pages":   f.cfg.Fetch.MaxPages,
		"total_links": len(allLinks),
	})

	return allLinks, nil
}

// isFatal reports whether a page fetch error should abort the run
// instead of skipping the page
func isFatal(err error) bool {
	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr.Type == errs.ErrorTypeParsing
	}
	return false
}
