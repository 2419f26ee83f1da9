// Package core has core logic for fetching, aggregation and scoring.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/wayscan/wayscan/core/agg"
	"github.com/wayscan/wayscan/internal/cdx"
	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/internal/outwriter"
	"github.com/wayscan/wayscan/internal/progress"
	"github.com/wayscan/wayscan/schema"
)

// ExecuteAnalyze runs the full pipeline for every configured domain, strictly
// sequentially. Fetch failures and empty results terminate only that domain's
// analysis; report write failures are fatal and abort the invocation.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, client contract.ArchiveClient, mgr contract.CacheManager) error {
	ow := outwriter.NewOutWriter()
	for i, domain := range cfg.Domains {
		report, err := AnalyzeDomain(ctx, cfg, client, mgr, domain)
		if err != nil {
			logFetchFailure(domain, err)
			continue
		}
		if report == nil {
			logNoData(domain)
			continue
		}

		if err := ow.WriteReport(report, cfg); err != nil {
			return fmt.Errorf("writing report for %s: %w", domain, err)
		}
		recordHistory(mgr, report)

		if !cfg.Quiet && i < len(cfg.Domains)-1 {
			fmt.Println("\n" + divider)
		}
	}
	return nil
}

const divider = "=================================================="

// AnalyzeDomain runs fetch, aggregation and scoring for a single domain.
// It returns (nil, nil) when the archive has no data for the domain.
func AnalyzeDomain(ctx context.Context, cfg *contract.Config, client contract.ArchiveClient, mgr contract.CacheManager, domain string) (*schema.DomainReport, error) {
	domain = cdx.NormalizeDomain(domain)

	if !cfg.Quiet {
		fmt.Printf("🔍 Analyzing: %s\n", domain)
	}

	indicator := progress.NewIndicator(os.Stdout, "Fetching archive data from Wayback Machine", cfg.Quiet)
	indicator.Start()
	records, fromCache, err := cachedFetchSnapshots(ctx, cfg, client, mgr, domain)
	switch {
	case errors.Is(err, cdx.ErrTimeout):
		indicator.Stop("Request timed out")
	case err != nil:
		indicator.Stop("Request failed")
	case fromCache:
		indicator.Stop("Loaded archive data from cache")
	default:
		indicator.Stop("Data fetched successfully!")
	}
	if err != nil {
		return nil, err
	}

	stats := agg.AggregateCoverage(records)
	if stats == nil {
		return nil, nil
	}

	if !cfg.Quiet {
		fmt.Printf("📊 Found %s snapshots to analyze\n\n", schema.FormatCount(stats.TotalSnapshots))
	}

	score := ComputeHealthScore(stats)
	return &schema.DomainReport{
		Domain:      domain,
		Stats:       stats,
		HealthScore: score,
		HealthLabel: contract.GetPlainLabel(score),
		FromCache:   fromCache,
		GeneratedAt: time.Now(),
	}, nil
}

// recordHistory persists the run when a history backend is configured.
// History is best-effort bookkeeping; failures never break an analysis.
func recordHistory(mgr contract.CacheManager, report *schema.DomainReport) {
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}
	run := schema.HistoryRun{
		Domain:         report.Domain,
		RunTime:        report.GeneratedAt,
		TotalSnapshots: report.Stats.TotalSnapshots,
		TotalYears:     report.Stats.TotalYears,
		MissingYears:   len(report.Stats.MissingYears),
		HealthScore:    report.HealthScore,
		FirstSnapshot:  report.Stats.FirstSnapshot,
		LastSnapshot:   report.Stats.LastSnapshot,
	}
	if _, err := store.RecordRun(run); err != nil {
		contract.LogWarn("History tracking failed", err)
	}
}

// logFetchFailure prints a classified diagnostic and lets the caller move on
// to the next domain.
func logFetchFailure(domain string, err error) {
	if errors.Is(err, cdx.ErrTimeout) {
		fmt.Printf("❌ %s: this domain may have too many snapshots.\n", domain)
		fmt.Println("\n💡 Tips:")
		fmt.Println("   • Try a smaller/newer domain first (e.g., example.com)")
		fmt.Println("   • Very large sites like google.com may time out")
		return
	}
	fmt.Printf("❌ %s: %v\n", domain, err)
	fmt.Println("\n💡 Troubleshooting:")
	fmt.Println("   • Check your internet connection")
	fmt.Println("   • Try again in a few moments")
	fmt.Println("   • Try a different domain to test")
}

// logNoData reports the valid-but-empty terminal state.
func logNoData(domain string) {
	fmt.Printf("❌ No archive data found for %s.\n", domain)
	fmt.Println("\n💡 Tip: Make sure the domain was archived. Check https://web.archive.org")
}
