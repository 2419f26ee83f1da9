package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/wayscan/wayscan/internal/contract"
	"golang.org/x/term"
)

const (
	barWidth = 10 // glyph cells in a year's coverage bar

	minDividerWidth = 50
	maxDividerWidth = 80
)

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	return writeRows(csvWriter)
}

// renderBar draws a horizontal bar for a year's snapshot count scaled against
// the busiest year, as filled and unfilled glyph cells.
func renderBar(count, maxCount int) string {
	if maxCount <= 0 {
		maxCount = 1
	}
	filled := int(math.Round(float64(count) / float64(maxCount) * barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// getDividerWidth picks a horizontal rule width that fits the terminal.
func getDividerWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		detected, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detected <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = minDividerWidth
		} else {
			termWidth = detected
		}
	}
	if termWidth < minDividerWidth {
		return minDividerWidth
	}
	if termWidth > maxDividerWidth {
		return maxDividerWidth
	}
	return termWidth
}

// divider renders a horizontal rule of the configured width.
func divider(cfg *contract.Config) string {
	return strings.Repeat("━", getDividerWidth(cfg))
}
