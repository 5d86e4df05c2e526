package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string

	// Filter flags
	startDate string
	endDate   string
	yearRange string
	doyRange  string

	// Fetch flags
	timeoutSecs int
	maxPages    int
	pageSize    int
	maxRetries  int
)

// rootCmd represents the base command; the tool has a single operation
// so fetching happens directly on the root
var rootCmd = &cobra.Command{
	Use:   "echofetch <tile>",
	Short: "Query the NASA ECHO catalog for MOD09GA granule download URLs",
	Long: `echofetch queries the NASA ECHO catalog REST API for MOD09GA hdf
granules of one MODIS tile and prints the resulting download URLs, one
per line, on standard output. Logs go to standard error, so the output
can be piped straight into a download tool.

If no start or end dates are given, the entire time range for the tile
is returned. Supplying both a year range and a day-of-year range
switches to (year, day-of-year) filtering instead.`,
	Example: `  # All download URLs for tile h11v03, saved for wget
  echofetch h11v03 > h11v03-urls.txt
  wget -i h11v03-urls.txt

  # Only granules between two dates, inclusive
  echofetch h09v05 -s 20130101 -e 20130615

  # Growing seasons 2000-2005: days 150 through 300 of each year
  echofetch h09v05 -y 2000-2005 -d 150-300`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runFetch,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.echofetch.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVarP(&startDate, "start", "s", "", "inclusive start date, format YYYYMMDD")
	rootCmd.Flags().StringVarP(&endDate, "end", "e", "", "inclusive end date, format YYYYMMDD")
	rootCmd.Flags().StringVarP(&yearRange, "years", "y", "", "year range, hyphen separated, e.g. 2000-2005")
	rootCmd.Flags().StringVarP(&doyRange, "days", "d", "", "day-of-year range, hyphen separated, e.g. 150-300")

	rootCmd.Flags().IntVar(&timeoutSecs, "timeout", 30, "request timeout in seconds")
	rootCmd.Flags().IntVar(&maxPages, "max-pages", 500, "maximum number of result pages to fetch")
	rootCmd.Flags().IntVar(&pageSize, "page-size", 2000, "results per page")
	rootCmd.Flags().IntVar(&maxRetries, "max-retries", 3, "attempts per page before skipping it")

	rootCmd.SetVersionTemplate(`echofetch {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
