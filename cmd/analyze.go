package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wayscan/wayscan/core"
	"github.com/wayscan/wayscan/internal/cdx"
	"github.com/wayscan/wayscan/internal/contract"
)

// analyzeCmd performs archive coverage analysis for one or more domains.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <domain> [domain...]",
	Short: "Analyze archive coverage and health for one or more domains.",
	Long: `Query the Wayback Machine's CDX index and report archive coverage per domain.

For each domain, wayscan:
- Counts snapshots per calendar year
- Finds the first and last known captures
- Flags gap years with no snapshots at all
- Computes an overall archive health score (0-100)

Domains are processed strictly in order. A fetch failure or an unarchived
domain skips only that domain; the remaining domains still run.

Examples:
  # Analyze a single domain
  wayscan analyze example.com

  # Scheme prefixes are stripped automatically
  wayscan analyze https://example.com/

  # Analyze several domains in one run
  wayscan analyze example.com archive.org

  # Save the report to a file instead of the console
  wayscan analyze example.com --output-file report.txt

  # Machine-readable output for scripting
  wayscan analyze example.com --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := cdx.NewClient(cfg.Endpoint, cfg.FetchLimit, cfg.FetchTimeout)
		if err := core.ExecuteAnalyze(rootCtx, cfg, client, cacheManager); err != nil {
			contract.LogFatal("Cannot run archive analysis", err)
		}
	},
}
