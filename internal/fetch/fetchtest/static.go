// Package fetchtest provides in-memory Fetcher implementations for tests.
package fetchtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/DjordjeVuckovic/press-hunter/internal/fetch"
)

// StaticFetcher serves canned pages keyed by URL. Unknown URLs fail like a 404.
type StaticFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	errs  map[string]error
	calls []string
}

func NewStaticFetcher(pages map[string]string) *StaticFetcher {
	if pages == nil {
		pages = make(map[string]string)
	}
	return &StaticFetcher{
		pages: pages,
		errs:  make(map[string]error),
	}
}

func (f *StaticFetcher) Set(url, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[url] = body
}

func (f *StaticFetcher) Fail(url string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[url] = err
}

func (f *StaticFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	body, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("%w: 404", fetch.ErrUnexpectedStatus)
	}
	return body, nil
}

// Calls returns the fetched URLs in order.
func (f *StaticFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

var _ fetch.Fetcher = (*StaticFetcher)(nil)
