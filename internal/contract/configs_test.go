package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayscan/wayscan/schema"
)

// validRawInput returns a raw input populated the way viper would after
// applying the defaults.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Domains:      []string{"example.com"},
		Endpoint:     DefaultEndpoint,
		Limit:        DefaultFetchLimit,
		Output:       "text",
		Color:        "yes",
		CacheBackend: "sqlite",
	}
}

func TestProcessAndValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

		assert.Equal(t, []string{"example.com"}, cfg.Domains)
		assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
		assert.Equal(t, DefaultFetchLimit, cfg.FetchLimit)
		assert.Equal(t, DefaultFetchTimeout, cfg.FetchTimeout)
		assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
		assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend)
		assert.True(t, cfg.UseColors)
		assert.False(t, cfg.Quiet)
	})

	t.Run("empty endpoint falls back to default", func(t *testing.T) {
		input := validRawInput()
		input.Endpoint = "   "
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	})

	t.Run("custom durations", func(t *testing.T) {
		input := validRawInput()
		input.Timeout = "30s"
		input.CacheTTL = "1h"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
		assert.Equal(t, time.Hour, cfg.CacheTTL)
	})

	t.Run("output mode is case-insensitive", func(t *testing.T) {
		input := validRawInput()
		input.Output = "JSON"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		wantErr string
	}{
		{
			name:    "zero limit",
			mutate:  func(in *ConfigRawInput) { in.Limit = 0 },
			wantErr: "limit must be positive",
		},
		{
			name:    "negative limit",
			mutate:  func(in *ConfigRawInput) { in.Limit = -5 },
			wantErr: "limit must be positive",
		},
		{
			name:    "bad output mode",
			mutate:  func(in *ConfigRawInput) { in.Output = "xml" },
			wantErr: "invalid output mode",
		},
		{
			name:    "negative width",
			mutate:  func(in *ConfigRawInput) { in.Width = -1 },
			wantErr: "width must be non-negative",
		},
		{
			name:    "unparsable timeout",
			mutate:  func(in *ConfigRawInput) { in.Timeout = "ninety seconds" },
			wantErr: "invalid timeout",
		},
		{
			name:    "negative timeout",
			mutate:  func(in *ConfigRawInput) { in.Timeout = "-5s" },
			wantErr: "timeout must be positive",
		},
		{
			name:    "unparsable cache ttl",
			mutate:  func(in *ConfigRawInput) { in.CacheTTL = "one day" },
			wantErr: "invalid cache-ttl",
		},
		{
			name:    "negative cache ttl",
			mutate:  func(in *ConfigRawInput) { in.CacheTTL = "-1h" },
			wantErr: "cache-ttl must be non-negative",
		},
		{
			name:    "unknown cache backend",
			mutate:  func(in *ConfigRawInput) { in.CacheBackend = "redis" },
			wantErr: "invalid cache backend",
		},
		{
			name:    "unknown history backend",
			mutate:  func(in *ConfigRawInput) { in.HistoryBackend = "mongo" },
			wantErr: "invalid history backend",
		},
		{
			name: "mysql cache without connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
			},
			wantErr: "db-connect is required",
		},
		{
			name: "mysql cache with malformed connection string",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
				in.CacheDBConnect = "user:pass@localhost/db"
			},
			wantErr: "must contain '@tcp('",
		},
		{
			name: "postgres history without host",
			mutate: func(in *ConfigRawInput) {
				in.HistoryBackend = "postgresql"
				in.HistoryDBConnect = "dbname=wayscan"
			},
			wantErr: "must contain 'host='",
		},
		{
			name: "postgres history without dbname",
			mutate: func(in *ConfigRawInput) {
				in.HistoryBackend = "postgresql"
				in.HistoryDBConnect = "host=localhost"
			},
			wantErr: "must contain 'dbname='",
		},
		{
			name: "cache and history sharing a connection",
			mutate: func(in *ConfigRawInput) {
				in.CacheBackend = "mysql"
				in.CacheDBConnect = "user:pass@tcp(localhost:3306)/wayscan"
				in.HistoryBackend = "mysql"
				in.HistoryDBConnect = "user:pass@tcp(localhost:3306)/wayscan"
			},
			wantErr: "must differ from cache-db-connect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseBoolish(t *testing.T) {
	tests := []struct {
		s    string
		def  bool
		want bool
	}{
		{"yes", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"on", false, true},
		{"no", true, false},
		{"false", true, false},
		{"0", true, false},
		{"off", true, false},
		{"", true, true},
		{"", false, false},
		{"maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBoolish(tt.s, tt.def))
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		Domains:    []string{"a.com", "b.com"},
		Endpoint:   DefaultEndpoint,
		FetchLimit: 10,
	}

	clone := cfg.Clone()
	clone.Domains[0] = "mutated.com"
	clone.FetchLimit = 99

	assert.Equal(t, "a.com", cfg.Domains[0])
	assert.Equal(t, 10, cfg.FetchLimit)
}
