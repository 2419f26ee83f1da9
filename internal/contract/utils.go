package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/wayscan/wayscan/schema"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // strong, healthy archive signal
	GoodColor      = color.New(color.FgCyan)              // solid coverage
	FairColor      = color.New(color.FgYellow)            // patchy coverage, standard caution
	LimitedColor   = color.New(color.FgRed, color.Bold)   // weak or stale coverage
)

// GetPlainLabel returns a plain text health label for a score.
// This is the core logic used for CSV, JSON, and file output.
func GetPlainLabel(score int) string {
	switch {
	case score >= 90:
		return schema.ExcellentValue
	case score >= 70:
		return schema.GoodValue
	case score >= 50:
		return schema.FairValue
	default:
		return schema.LimitedValue
	}
}

// GetColorLabel returns a colored health label for console output.
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(score int) string {
	text := GetPlainLabel(score)

	switch text {
	case schema.ExcellentValue:
		return ExcellentColor.Sprint(text)
	case schema.GoodValue:
		return GoodColor.Sprint(text)
	case schema.FairValue:
		return FairColor.Sprint(text)
	default: // "Limited"
		return LimitedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for snapshot cache storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wayscan_cache.db"
	}
	return filepath.Join(homeDir, ".wayscan_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wayscan_history.db"
	}
	return filepath.Join(homeDir, ".wayscan_history.db")
}
