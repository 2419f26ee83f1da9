package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/schema"
)

// fileTimeFormat is used for the generation timestamp in the file projection.
const fileTimeFormat = "2006-01-02 15:04:05"

// writeReportFile writes the plain-text file projection: the same statistical
// content as the console projection, with a generation timestamp, no bar
// chart, and the full untruncated missing-year list. The target file is
// overwritten on each write.
func writeReportFile(report *schema.DomainReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return renderFileReport(w, report)
	}, "Report saved")
}

// renderFileReport is split out so tests can capture the projection.
func renderFileReport(w io.Writer, report *schema.DomainReport) error {
	stats := report.Stats
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(w, "Wayback Machine Analysis Report")
	fmt.Fprintf(w, "Domain: %s\n", report.Domain)
	fmt.Fprintf(w, "Generated: %s\n", report.GeneratedAt.Format(fileTimeFormat))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total Snapshots: %s\n", schema.FormatCount(stats.TotalSnapshots))
	fmt.Fprintf(w, "First Archived: %s\n", stats.FirstSnapshot)
	fmt.Fprintf(w, "Last Archived: %s\n", stats.LastSnapshot)
	fmt.Fprintf(w, "Total Years: %d\n", stats.TotalYears)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Coverage by Year:")
	for _, year := range schema.SortedYears(stats.YearlyCounts) {
		fmt.Fprintf(w, "  %s: %s snapshots\n", year, schema.FormatCount(stats.YearlyCounts[year]))
	}

	if len(stats.MissingYears) > 0 {
		fmt.Fprintf(w, "\nMissing Years: %s\n", strings.Join(stats.MissingYears, ", "))
	}

	fmt.Fprintf(w, "\nArchive Health Score: %d%% (%s)\n", report.HealthScore, contract.GetPlainLabel(report.HealthScore))

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generated by wayscan. Star us on GitHub if this helped!")
	return nil
}

// writeReportJSON writes the report as indented JSON.
func writeReportJSON(report *schema.DomainReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeReportCSV writes one row per calendar year inside the observed range,
// including missing years with a zero snapshot count.
func writeReportCSV(report *schema.DomainReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"domain", "year", "snapshots", "missing", "health_score", "health_label"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			return writeCSVRowsForReport(cw, report)
		})
	}, "Wrote CSV")
}

// writeCSVRowsForReport emits observed and missing years in ascending order.
func writeCSVRowsForReport(w *csv.Writer, report *schema.DomainReport) error {
	stats := report.Stats
	label := contract.GetPlainLabel(report.HealthScore)
	score := strconv.Itoa(report.HealthScore)

	years := schema.SortedYears(stats.YearlyCounts)
	years = append(years, stats.MissingYears...)
	sort.Strings(years)

	missing := make(map[string]struct{}, len(stats.MissingYears))
	for _, y := range stats.MissingYears {
		missing[y] = struct{}{}
	}

	for _, year := range years {
		_, isMissing := missing[year]
		rec := []string{
			report.Domain,
			year,
			strconv.Itoa(stats.YearlyCounts[year]),
			strconv.FormatBool(isMissing),
			score,
			label,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
