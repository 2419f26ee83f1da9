// Package outwriter has output and writer logic for coverage reports.
package outwriter

import (
	"fmt"

	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/schema"
)

// OutWriter provides a unified interface for all report output operations.
// It encapsulates the output formats and provides a clean API for core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport renders a domain report, dispatching on the configured output
// format. Text mode produces the console projection on stdout, or the plain
// file projection when an output file is configured.
func (ow *OutWriter) WriteReport(report *schema.DomainReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(report, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if cfg.OutputFile != "" {
			if err := writeReportFile(report, cfg); err != nil {
				return fmt.Errorf("error writing report file: %w", err)
			}
			return nil
		}
		if err := writeReportConsole(report, cfg); err != nil {
			return fmt.Errorf("error writing console report: %w", err)
		}
	}
	return nil
}
