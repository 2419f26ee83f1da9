package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/schema"
)

// footerLines is the fixed footer appended to every rendered report.
var footerLines = []string{
	"💡 This is a basic analysis.",
	"",
	"📦 LIMITATIONS:",
	"   • Limited to 100,000 snapshots per query",
	"   • No deep page-level analysis",
	"   • No content recovery",
	"   • No asset retrieval",
	"",
	"⭐ If this tool helped you, star us on GitHub!",
}

// writeReportConsole renders the full console projection: quick stats, a bar
// chart over the most recent years, truncated missing years, and the health
// score with its label.
func writeReportConsole(report *schema.DomainReport, cfg *contract.Config) error {
	return renderConsoleReport(os.Stdout, report, cfg)
}

// renderConsoleReport is split out so tests can capture the projection.
func renderConsoleReport(w io.Writer, report *schema.DomainReport, cfg *contract.Config) error {
	stats := report.Stats

	fmt.Fprintln(w, "\n✅ ARCHIVE STATUS: Available")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "📊 Quick Stats:")
	fmt.Fprintf(w, "   Total Snapshots: %s\n", schema.FormatCount(stats.TotalSnapshots))
	fmt.Fprintf(w, "   First Archived: %s\n", stats.FirstSnapshot)
	fmt.Fprintf(w, "   Last Archived: %s\n", stats.LastSnapshot)
	fmt.Fprintf(w, "   Total Years: %d\n", stats.TotalYears)

	fmt.Fprintln(w, "\n📅 Coverage by Year:")
	if err := renderYearTable(w, stats); err != nil {
		return err
	}
	if extra := stats.TotalYears - contract.DefaultChartYears; extra > 0 {
		fmt.Fprintf(w, "   ... and %d more years\n", extra)
	}

	if len(stats.MissingYears) > 0 {
		shown := stats.MissingYears
		if len(shown) > contract.DefaultMissingShown {
			shown = shown[:contract.DefaultMissingShown]
		}
		fmt.Fprintf(w, "\n⚠️  Missing Years: %s\n", strings.Join(shown, ", "))
		if overflow := len(stats.MissingYears) - contract.DefaultMissingShown; overflow > 0 {
			fmt.Fprintf(w, "   ... and %d more\n", overflow)
		}
	}

	label := contract.GetPlainLabel(report.HealthScore)
	if cfg.UseColors {
		label = contract.GetColorLabel(report.HealthScore)
	}
	fmt.Fprintf(w, "\n📈 Archive Health: %d%% (%s)\n", report.HealthScore, label)

	fmt.Fprintln(w, "\n"+divider(cfg))
	fmt.Fprintln(w)
	for _, line := range footerLines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "\n"+divider(cfg))
	return nil
}

// renderYearTable draws the coverage bar chart over the most recent years.
func renderYearTable(w io.Writer, stats *schema.CoverageStats) error {
	years := schema.SortedYears(stats.YearlyCounts)
	if len(years) > contract.DefaultChartYears {
		years = years[len(years)-contract.DefaultChartYears:]
	}

	maxCount := 1
	for _, count := range stats.YearlyCounts {
		if count > maxCount {
			maxCount = count
		}
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Year", "Coverage", "Snapshots"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, year := range years {
		count := stats.YearlyCounts[year]
		data = append(data, []string{
			year,
			renderBar(count, maxCount),
			schema.FormatCount(count),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
