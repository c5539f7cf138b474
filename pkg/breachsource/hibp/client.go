// Package hibp provides a breachsource.Client implementation backed by the
// Have I Been Pwned v3 API.
package hibp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"breachwatch/pkg/breachsource"
	"breachwatch/pkg/serrors"
)

// DefaultBaseURL is the production endpoint of the HIBP v3 API.
const DefaultBaseURL = "https://haveibeenpwned.com/api/v3"

// Client talks to the Have I Been Pwned REST API and fulfills the
// breachsource.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests; its Timeout bounds every lookup
	baseURL    string       // baseURL is the API root, overridable for tests
	apiKey     string       // apiKey is sent as the hibp-api-key header
}

// Lookup queries the breached-account endpoint for the given value.
//
// HIBP semantics: 200 returns the list of breaches, 404 means the value was
// not found in any breach (a legitimately empty result, not a failure), 429 is
// rate limiting. Anything else, including transport errors, is reported as
// unavailable.
func (c *Client) Lookup(ctx context.Context, value string) ([]breachsource.Breach, error) {
	// https://haveibeenpwned.com/API/v3#BreachesForAccount
	endpoint := c.baseURL + "/breachedaccount/" + url.PathEscape(value) + "?truncateResponse=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("hibp-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach breach source")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusNotFound {
		// not found in any breach
		return []breachsource.Breach{}, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable, "lookup failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var records []struct {
		Name  string `json:"Name"`
		Title string `json:"Title"`
	}
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not decode response")
	}

	out := make([]breachsource.Breach, 0, len(records))
	for _, r := range records {
		out = append(out, breachsource.Breach{Source: r.Name, Title: r.Title})
	}

	return out, nil
}

// Ensure Client conforms to the breachsource.Client interface at compile time.
var _ breachsource.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API key to
// interact with the HIBP API at baseURL (DefaultBaseURL when empty).
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}
