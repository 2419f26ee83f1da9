// Package cdx implements the client for the Wayback Machine CDX index API.
package cdx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wayscan/wayscan/internal/contract"
	"github.com/wayscan/wayscan/schema"
)

// ErrTimeout indicates the CDX query exceeded its time budget. Very large or
// popular domains routinely hit this; the fix is a smaller domain, not a retry.
var ErrTimeout = errors.New("cdx query timed out")

// Client queries the CDX index over HTTP. One bounded request per call,
// no pagination, no retries.
type Client struct {
	endpoint string
	limit    int
	http     *http.Client
}

var _ contract.ArchiveClient = &Client{} // Compile-time check

// NewClient creates a CDX client. The timeout bounds the entire call,
// including reading the response body.
func NewClient(endpoint string, limit int, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		limit:    limit,
		http:     &http.Client{Timeout: timeout},
	}
}

// FetchSnapshots issues a single domain-wide query collapsed to one record
// per calendar day and returns the data rows with the header row stripped.
// An empty or header-only response yields an empty slice and a nil error;
// "no data" is a valid terminal state, not a failure.
func (c *Client) FetchSnapshots(ctx context.Context, domain string) ([]schema.SnapshotRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building cdx request: %w", err)
	}

	query := req.URL.Query()
	query.Set("url", domain)
	query.Set("matchType", "domain")
	query.Set("output", "json")
	query.Set("fl", "timestamp,statuscode,mimetype")
	query.Set("collapse", "timestamp:8") // collapse by day
	query.Set("limit", strconv.Itoa(c.limit))
	req.URL.RawQuery = query.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("cdx api returned %s: %s", resp.Status, string(body))
	}

	var rows [][]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty body means the domain has no captures.
			return nil, nil
		}
		return nil, classifyTransportError(fmt.Errorf("decoding cdx response: %w", err))
	}

	return stripHeader(rows), nil
}

// stripHeader discards the field-name row the CDX API prepends to non-empty
// JSON results and converts the remaining rows into SnapshotRecords.
func stripHeader(rows [][]string) []schema.SnapshotRecord {
	if len(rows) <= 1 {
		return nil
	}
	records := make([]schema.SnapshotRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		rec := schema.SnapshotRecord{Timestamp: row[0]}
		if len(row) > 1 {
			rec.StatusCode = row[1]
		}
		if len(row) > 2 {
			rec.MimeType = row[2]
		}
		records = append(records, rec)
	}
	return records
}

// classifyTransportError maps timeouts onto ErrTimeout and leaves every other
// network or HTTP-level failure as a transport error carrying its cause.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("cdx transport failure: %w", err)
}
