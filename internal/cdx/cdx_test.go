package cdx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayscan/wayscan/schema"
)

// newCDXServer returns a test server that replies with the given rows as the
// CDX JSON body and records the last query it saw.
func newCDXServer(t *testing.T, rows [][]string, lastQuery *map[string][]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			*lastQuery = r.URL.Query()
		}
		if rows == nil {
			return // empty body, no captures
		}
		_ = json.NewEncoder(w).Encode(rows)
	}))
}

func TestFetchSnapshots(t *testing.T) {
	t.Run("strips header row", func(t *testing.T) {
		rows := [][]string{
			{"timestamp", "statuscode", "mimetype"},
			{"20200101000000", "200", "text/html"},
			{"20200615120000", "301", "text/html"},
		}
		srv := newCDXServer(t, rows, nil)
		defer srv.Close()

		client := NewClient(srv.URL, 100, 5*time.Second)
		records, err := client.FetchSnapshots(context.Background(), "example.com")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, schema.SnapshotRecord{Timestamp: "20200101000000", StatusCode: "200", MimeType: "text/html"}, records[0])
		assert.Equal(t, "20200615120000", records[1].Timestamp)
	})

	t.Run("sends expected query parameters", func(t *testing.T) {
		var query map[string][]string
		srv := newCDXServer(t, [][]string{{"timestamp", "statuscode", "mimetype"}}, &query)
		defer srv.Close()

		client := NewClient(srv.URL, 100000, 5*time.Second)
		_, err := client.FetchSnapshots(context.Background(), "example.com")
		require.NoError(t, err)

		assert.Equal(t, "example.com", query["url"][0])
		assert.Equal(t, "domain", query["matchType"][0])
		assert.Equal(t, "json", query["output"][0])
		assert.Equal(t, "timestamp,statuscode,mimetype", query["fl"][0])
		assert.Equal(t, "timestamp:8", query["collapse"][0])
		assert.Equal(t, "100000", query["limit"][0])
	})

	t.Run("empty body means no captures", func(t *testing.T) {
		srv := newCDXServer(t, nil, nil)
		defer srv.Close()

		client := NewClient(srv.URL, 100, 5*time.Second)
		records, err := client.FetchSnapshots(context.Background(), "never-archived.example")
		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("header-only response means no captures", func(t *testing.T) {
		srv := newCDXServer(t, [][]string{{"timestamp", "statuscode", "mimetype"}}, nil)
		defer srv.Close()

		client := NewClient(srv.URL, 100, 5*time.Second)
		records, err := client.FetchSnapshots(context.Background(), "example.com")
		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("skips rows with empty timestamp", func(t *testing.T) {
		rows := [][]string{
			{"timestamp", "statuscode", "mimetype"},
			{"", "200", "text/html"},
			{"20210505000000", "200", "text/html"},
		}
		srv := newCDXServer(t, rows, nil)
		defer srv.Close()

		client := NewClient(srv.URL, 100, 5*time.Second)
		records, err := client.FetchSnapshots(context.Background(), "example.com")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "20210505000000", records[0].Timestamp)
	})

	t.Run("short rows still carry a timestamp", func(t *testing.T) {
		rows := [][]string{
			{"timestamp"},
			{"20190101000000"},
		}
		srv := newCDXServer(t, rows, nil)
		defer srv.Close()

		client := NewClient(srv.URL, 100, 5*time.Second)
		records, err := client.FetchSnapshots(context.Background(), "example.com")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "20190101000000", records[0].Timestamp)
		assert.Empty(t, records[0].StatusCode)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 100, 5*time.Second)
		_, err := client.FetchSnapshots(context.Background(), "example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cdx api returned")
		assert.False(t, errors.Is(err, ErrTimeout))
	})

	t.Run("slow server maps to ErrTimeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(300 * time.Millisecond)
			_ = json.NewEncoder(w).Encode([][]string{})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 100, 50*time.Millisecond)
		_, err := client.FetchSnapshots(context.Background(), "huge-domain.example")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("cancelled context maps to ErrTimeout on deadline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		client := NewClient(srv.URL, 100, 5*time.Second)
		_, err := client.FetchSnapshots(ctx, "example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("unreachable endpoint is a transport error", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 100, 2*time.Second)
		_, err := client.FetchSnapshots(context.Background(), "example.com")
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrTimeout))
	})
}

func TestClassifyTransportError(t *testing.T) {
	t.Run("deadline exceeded", func(t *testing.T) {
		err := classifyTransportError(context.DeadlineExceeded)
		assert.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("generic error", func(t *testing.T) {
		err := classifyTransportError(errors.New("connection refused"))
		assert.False(t, errors.Is(err, ErrTimeout))
		assert.Contains(t, err.Error(), "cdx transport failure")
	})
}

func TestStripHeader(t *testing.T) {
	t.Run("nil rows", func(t *testing.T) {
		assert.Nil(t, stripHeader(nil))
	})

	t.Run("header only", func(t *testing.T) {
		assert.Nil(t, stripHeader([][]string{{"timestamp", "statuscode", "mimetype"}}))
	})

	t.Run("empty row discarded", func(t *testing.T) {
		rows := [][]string{
			{"timestamp", "statuscode", "mimetype"},
			{},
		}
		assert.Empty(t, stripHeader(rows))
	})
}
