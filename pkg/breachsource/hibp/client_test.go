package hibp_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"breachwatch/pkg/breachsource/hibp"
	"breachwatch/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *hibp.Client {
	return hibp.New(&http.Client{Transport: fn}, "", "test-key")
}

func TestClient_Lookup_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "haveibeenpwned.com", r.URL.Host)
		require.Equal(t, "/api/v3/breachedaccount/a@x.com", r.URL.Path)
		require.Equal(t, "false", r.URL.Query().Get("truncateResponse"))
		require.Equal(t, "test-key", r.Header.Get("hibp-api-key"))

		body := `[{"Name":"SiteX","Title":"2019 leak"},{"Name":"SiteY","Title":"Forum dump"}]`

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})

	breaches, err := c.Lookup(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, breaches, 2)
	require.Equal(t, "SiteX", breaches[0].Source)
	require.Equal(t, "2019 leak", breaches[0].Title)
	require.Equal(t, "SiteY", breaches[1].Source)
}

func TestClient_Lookup_notFoundMeansClean(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	})

	breaches, err := c.Lookup(context.Background(), "clean@x.com")
	require.NoError(t, err, "404 is 'not in any breach', not a failure")
	require.Empty(t, breaches)
	require.NotNil(t, breaches)
}

func TestClient_Lookup_rateLimited429(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "a@x.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited, "expected ErrRateLimited kind: %v", err)
}

func TestClient_Lookup_serverErrorIsUnavailable(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("boom")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "a@x.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Lookup_transportErrorIsUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, cause
	})

	_, err := c.Lookup(context.Background(), "a@x.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Lookup_badJSONIsUnavailable(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("{not json")),
		}, nil
	})

	_, err := c.Lookup(context.Background(), "a@x.com")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
