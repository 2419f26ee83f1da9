package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/wayscan/wayscan/schema"
)

// Default configuration values shared between flags and viper defaults.
const (
	// DefaultEndpoint is the CDX index endpoint of the Wayback Machine.
	DefaultEndpoint = "https://web.archive.org/cdx/search/cdx"

	// DefaultFetchLimit caps the number of snapshot rows per query.
	DefaultFetchLimit = 100000

	// DefaultFetchTimeout bounds the single CDX call. No retries.
	DefaultFetchTimeout = 90 * time.Second

	// DefaultCacheTTL is how long a cached CDX response stays fresh.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultChartYears is how many recent years the console bar chart shows.
	DefaultChartYears = 10

	// DefaultMissingShown is how many missing years the console report lists
	// before truncating with an overflow counter.
	DefaultMissingShown = 10
)

// Config is the validated, final configuration used by all commands.
type Config struct {
	Domains []string // normalized domains to analyze, in order

	Endpoint     string
	FetchLimit   int
	FetchTimeout time.Duration

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheTTL       time.Duration

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in console output
	Quiet     bool // Suppress spinner and headers (piped output, MCP mode)
}

// Clone returns a copy of the config safe for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Domains = append([]string(nil), c.Domains...)
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Domains []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Endpoint         string `mapstructure:"endpoint"`
	Limit            int    `mapstructure:"limit"`
	Timeout          string `mapstructure:"timeout"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	Quiet            bool   `mapstructure:"quiet"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	CacheTTL         string `mapstructure:"cache-ttl"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
}

// ProcessAndValidate reads from 'input' and populates 'cfg', validating as it goes.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDurations(cfg, input); err != nil {
		return err
	}
	if err := processBackends(cfg, input); err != nil {
		return err
	}
	cfg.Domains = append([]string(nil), input.Domains...)
	return nil
}

// validateSimpleInputs handles scalar fields with straightforward checks.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Endpoint = strings.TrimSpace(input.Endpoint)
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.FetchLimit = input.Limit
	if cfg.FetchLimit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", input.Limit)
	}

	out := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if out == "" {
		out = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[out]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv or json", input.Output)
	}
	cfg.Output = out
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	cfg.UseColors = parseBoolish(input.Color, true)
	cfg.Quiet = input.Quiet
	return nil
}

// processDurations parses the timeout and cache TTL strings.
func processDurations(cfg *Config, input *ConfigRawInput) error {
	cfg.FetchTimeout = DefaultFetchTimeout
	if s := strings.TrimSpace(input.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		cfg.FetchTimeout = d
	}

	cfg.CacheTTL = DefaultCacheTTL
	if s := strings.TrimSpace(input.CacheTTL); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl %q: %w", input.CacheTTL, err)
		}
		if d < 0 {
			return fmt.Errorf("cache-ttl must be non-negative, got %s", d)
		}
		cfg.CacheTTL = d
	}
	return nil
}

// processBackends validates the cache and history database settings.
func processBackends(cfg *Config, input *ConfigRawInput) error {
	cacheBackend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(input.CacheBackend)))
	if cacheBackend == "" {
		cacheBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend %q: must be sqlite, mysql, postgresql, or none", input.CacheBackend)
	}
	if err := ValidateDatabaseConnectionString(cacheBackend, input.CacheDBConnect); err != nil {
		return err
	}
	cfg.CacheBackend = cacheBackend
	cfg.CacheDBConnect = input.CacheDBConnect

	historyBackend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(input.HistoryBackend)))
	if historyBackend == "" {
		historyBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[historyBackend]; !ok {
		return fmt.Errorf("invalid history backend %q: must be sqlite, mysql, postgresql, or none", input.HistoryBackend)
	}
	if err := ValidateDatabaseConnectionString(historyBackend, input.HistoryDBConnect); err != nil {
		return err
	}
	if historyBackend != schema.NoneBackend && historyBackend == cacheBackend &&
		input.HistoryDBConnect != "" && input.HistoryDBConnect == input.CacheDBConnect {
		return fmt.Errorf("history-db-connect must differ from cache-db-connect when both use the %s backend", historyBackend)
	}
	cfg.HistoryBackend = historyBackend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// parseBoolish interprets yes/no/true/false/1/0 strings, falling back to def.
func parseBoolish(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}
