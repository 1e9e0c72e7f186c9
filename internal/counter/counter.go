// Package counter increments and reads the per-school visit counter hosted
// on counterapi.dev. Failures never affect the dashboard; callers hide the
// count when Hit returns an error.
package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/asalkapakli/ykscountdown/internal/logging"
)

// DefaultKey is used when a title folds to nothing.
const DefaultKey = "default-school-yks"

// VisitsSuffix follows the count wherever it is shown.
const VisitsSuffix = "Görüntülenme"

var turkishFold = strings.NewReplacer(
	"ğ", "g", "ü", "u", "ş", "s", "ı", "i", "ö", "o", "ç", "c",
)

// Slug derives the counter key from a school title.
func Slug(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = turkishFold.Replace(s)

	var b strings.Builder
	dash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return DefaultKey
	}
	return out
}

// Client talks to the counter service.
type Client struct {
	baseURL   string
	namespace string
	http      *http.Client
	logger    *logging.Logger
}

// NewClient creates a client. A zero timeout leaves the request bounded
// only by the caller's context.
func NewClient(baseURL, namespace string, timeout time.Duration, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		namespace: namespace,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// URL returns the increment endpoint for a key.
func (c *Client) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s/up", c.baseURL, url.PathEscape(c.namespace), url.PathEscape(key))
}

type hitResponse struct {
	Count *json.Number `json:"count"`
}

// Hit increments the counter for title and returns the new count.
func (c *Client) Hit(ctx context.Context, title string) (int64, error) {
	endpoint := c.URL(Slug(title))
	c.logger.Debug("counter request: GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Verbose("counter request failed: %v", err)
		return 0, fmt.Errorf("counter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Verbose("counter returned %s", resp.Status)
		return 0, fmt.Errorf("counter request: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return 0, fmt.Errorf("read counter response: %w", err)
	}
	var parsed hitResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("decode counter response: %w", err)
	}
	if parsed.Count == nil {
		return 0, fmt.Errorf("counter response has no numeric count")
	}
	n, err := parsed.Count.Int64()
	if err != nil {
		f, ferr := parsed.Count.Float64()
		if ferr != nil {
			return 0, fmt.Errorf("counter response count %q: %w", parsed.Count.String(), err)
		}
		n = int64(f)
	}
	c.logger.Debug("counter value for %s: %d", Slug(title), n)
	return n, nil
}

// Format renders a visit count with Turkish digit grouping.
func Format(n int64) string {
	return strings.ReplaceAll(humanize.Comma(n), ",", ".") + " " + VisitsSuffix
}
