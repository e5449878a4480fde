// internal/fetch/fetcher.go
package fetch

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/shelfwatch/harvest/internal/ratelimit"
)

// Options configures a Fetcher.
type Options struct {
	// MaxConcurrent is the permit pool capacity shared by every fetch of
	// the run. Values <= 0 fall back to 5.
	MaxConcurrent int

	// Delay is the pause charged after each completed fetch, while the
	// permit is still held, so capacity bounds the true request rate.
	Delay time.Duration

	// Timeout bounds one whole retrieval including body read.
	Timeout time.Duration

	UserAgent string

	// Headers are extra request headers applied to every fetch.
	Headers map[string]string
}

// Fetcher performs rate-limited retrievals bounded by a shared counting
// permit pool. One Fetcher instance is shared by all harvest tasks.
type Fetcher struct {
	client    *http.Client
	limiter   ratelimit.RateLimiter
	permits   *semaphore.Weighted
	delay     time.Duration
	userAgent string
	headers   map[string]string
}

// New creates a Fetcher with a pooled HTTP transport.
func New(limiter ratelimit.RateLimiter, opts Options) *Fetcher {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 5
	}

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &Fetcher{
		client:    client,
		limiter:   limiter,
		permits:   semaphore.NewWeighted(int64(opts.MaxConcurrent)),
		delay:     opts.Delay,
		userAgent: opts.UserAgent,
		headers:   opts.Headers,
	}
}

// Fetch retrieves one URL. A nil error means body holds the full response
// content. A non-nil error is always a *Error whose cause classifies the
// failure; the caller's task degrades to zero records, nothing more.
//
// The permit is held around the network call and the post-fetch delay,
// never across extraction, and it is released on every exit path.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, f.fail(newError(rawURL, CauseTimeout, 0, err))
	}

	if err := f.permits.Acquire(ctx, 1); err != nil {
		return nil, f.fail(newError(rawURL, CauseTimeout, 0, err))
	}
	defer f.permits.Release(1)

	log.Info().Str("url", rawURL).Msg("Fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, f.fail(newError(rawURL, CauseTransport, 0, err))
	}

	req.Header.Set("User-Agent", f.userAgent)
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.fail(classify(rawURL, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, f.fail(newError(rawURL, CauseStatus, resp.StatusCode, nil))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, f.fail(classify(rawURL, err))
	}

	// The delay is charged per completed fetch only; failures return above
	// without pacing.
	f.pause(ctx)

	return body, nil
}

// Close releases idle transport connections.
func (f *Fetcher) Close() {
	f.client.CloseIdleConnections()
}

// pause enforces the post-fetch delay, ending early when ctx is done.
func (f *Fetcher) pause(ctx context.Context) {
	if f.delay <= 0 {
		return
	}

	t := time.NewTimer(f.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// classify maps a transport-level failure onto the fetch failure taxonomy.
func classify(rawURL string, err error) *Error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return newError(rawURL, CauseTimeout, 0, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(rawURL, CauseTimeout, 0, err)
	}
	return newError(rawURL, CauseTransport, 0, err)
}

func (f *Fetcher) fail(ferr *Error) *Error {
	evt := log.Warn().Str("url", ferr.URL).Str("cause", string(ferr.Cause))
	if ferr.StatusCode != 0 {
		evt = evt.Int("status", ferr.StatusCode)
	}
	if ferr.Err != nil {
		evt = evt.Err(ferr.Err)
	}
	evt.Msg("Fetch failed")
	return ferr
}
