package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cgoodale/echo-mod09ga/pkg/catalog"
	"github.com/cgoodale/echo-mod09ga/pkg/config"
	"github.com/cgoodale/echo-mod09ga/pkg/echo"
	"github.com/cgoodale/echo-mod09ga/pkg/granule"
	"github.com/cgoodale/echo-mod09ga/pkg/logger"
)

// filterPlan holds the validated filter inputs, resolved before any
// network activity
type filterPlan struct {
	useYearDOY bool
	start      *time.Time
	end        *time.Time
	doys       granule.Range
	years      granule.Range
}

// buildFilterPlan validates the filter flags and picks the strategy.
// When both a year range and a day-of-year range are present, the
// (year, day-of-year) strategy wins and the date bounds are ignored.
func buildFilterPlan() (*filterPlan, error) {
	plan := &filterPlan{}

	if yearRange != "" && doyRange != "" {
		plan.useYearDOY = true

		years, err := granule.ParseHyphenRange(yearRange)
		if err != nil {
			return nil, err
		}
		doys, err := granule.ParseHyphenRange(doyRange)
		if err != nil {
			return nil, err
		}
		plan.years = years
		plan.doys = doys
		return plan, nil
	}

	if startDate != "" {
		start, err := granule.ParseBound(startDate)
		if err != nil {
			return nil, err
		}
		plan.start = &start
	}
	if endDate != "" {
		end, err := granule.ParseBound(endDate)
		if err != nil {
			return nil, err
		}
		plan.end = &end
	}

	return plan, nil
}

// apply runs the selected filtering strategy over the fetched urls
func (p *filterPlan) apply(urls []string) ([]string, error) {
	if p.useYearDOY {
		return granule.FilterYearDOY(urls, p.doys, p.years)
	}
	return granule.FilterDateRange(urls, p.start, p.end)
}

func runFetch(cmd *cobra.Command, args []string) error {
	tileArg := strings.TrimSpace(args[0])

	// All input validation happens before any network activity
	tile, err := echo.ParseTileID(tileArg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	plan, err := buildFilterPlan()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	flags := make(map[string]interface{})
	if cmd.Flags().Changed("timeout") {
		flags["timeout"] = time.Duration(timeoutSecs) * time.Second
	}
	if cmd.Flags().Changed("max-pages") {
		flags["max-pages"] = maxPages
	}
	if cmd.Flags().Changed("page-size") {
		flags["page-size"] = pageSize
	}
	if cmd.Flags().Changed("max-retries") {
		flags["max-retries"] = maxRetries
	}
	if cmd.Flags().Changed("log-level") {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	log.InfoWithFields("starting granule search", map[string]interface{}{
		"tile":    tile.String(),
		"dataset": cfg.Catalog.Dataset,
	})

	query := echo.BuildTileQuery(echo.BaseQuery(cfg.Catalog.Dataset), tile)

	client := echo.NewClient(cfg.Fetch.Timeout, log)
	fetcher := catalog.New(client, cfg, log)

	urls, err := fetcher.FetchAll(query)
	if err != nil {
		log.WithError(err).Error("granule search failed")
		return err
	}

	filtered, err := plan.apply(urls)
	if err != nil {
		log.WithError(err).Error("filtering failed")
		return err
	}

	log.InfoWithFields("granule search completed", map[string]interface{}{
		"fetched":  len(urls),
		"matching": len(filtered),
	})

	for _, url := range filtered {
		fmt.Println(url)
	}

	return nil
}
