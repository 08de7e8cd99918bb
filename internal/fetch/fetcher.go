package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

const (
	DefaultTimeout = 15 * time.Second

	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	defaultAcceptLanguage = "en-GB,en;q=0.9"

	maxBodyBytes = 5 << 20

	// Pages rendered client-side usually come back as a small shell document.
	shortResponseChars = 2000
)

// ErrUnexpectedStatus is returned for any non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Fetcher returns the HTML text of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type HTTPFetcher struct {
	client         *http.Client
	userAgent      string
	accept         string
	acceptLanguage string
}

type Option func(*HTTPFetcher)

func WithTimeout(timeout time.Duration) Option {
	return func(f *HTTPFetcher) {
		if timeout > 0 {
			f.client.Timeout = timeout
		}
	}
}

func WithUserAgent(userAgent string) Option {
	return func(f *HTTPFetcher) {
		if userAgent != "" {
			f.userAgent = userAgent
		}
	}
}

// WithHTTPClient replaces the underlying client; its Timeout is kept as given.
func WithHTTPClient(client *http.Client) Option {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:         &http.Client{Timeout: DefaultTimeout},
		userAgent:      defaultUserAgent,
		accept:         defaultAccept,
		acceptLanguage: defaultAcceptLanguage,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs a GET with browser-like headers and returns the body decoded to UTF-8.
// Every failure is logged as a warning and returned; no retries are made.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.fetch(ctx, url)
	if err != nil {
		slog.Warn("Fetch failed", "url", url, "error", err)
		return "", err
	}

	if n := utf8.RuneCountInString(body); n < shortResponseChars {
		slog.Warn("Response is suspiciously short, page may require JavaScript rendering",
			"url", url,
			"chars", n,
		)
	}

	return body, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", f.accept)
	req.Header.Set("Accept-Language", f.acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to detect charset: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
