// Package transport provides the shared outbound HTTP client used by every forge adapter
// it owns timeouts and bounded retries; callers never retry on top of it
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "forgeapi/internal/platform/errors"
	"forgeapi/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "forgeapi"
	defaultRetryBase = 250 * time.Millisecond
	maxBackoff       = 10 * time.Second
	maxBody          = 4 << 20
)

// Options configures the Client
type Options struct {
	UserAgent string
	Timeout   time.Duration

	// MaxRetries bounds retries of transient failures (transport errors, 429, 502-504)
	// zero disables retries
	MaxRetries int
	RetryBase  time.Duration

	// HTTP overrides the underlying client, mainly for tests
	HTTP *http.Client
}

// Request is a single outbound call
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is a fully read 2xx answer
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Client issues requests with a finite timeout and bounded retries
// safe for concurrent use; adapters share one instance by reference
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	hc := o.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http:  hc,
		opts:  o,
		log:   *logger.Named("transport"),
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Do issues req, retrying transient failures, and returns the 2xx response
// non-2xx answers come back as a *perr.StatusError inside a project error
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, perr.FromTransportf(err, "%s %s cancelled", method, req.URL)
		}

		hr, err := http.NewRequestWithContext(ctx, method, req.URL, bodyReader(req.Body))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "build request %s", req.URL)
		}
		hr.Header.Set("User-Agent", c.opts.UserAgent)
		for k, vv := range req.Header {
			for _, v := range vv {
				hr.Header.Add(k, v)
			}
		}

		start := c.now()
		resp, err := c.http.Do(hr)
		lat := c.now().Sub(start)

		if err != nil {
			if ctx.Err() != nil || !c.shouldRetry(attempts) {
				return nil, perr.FromTransportf(err, "%s %s failed", method, req.URL)
			}
			back := c.backoff(attempts)
			c.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempts).Str("url", req.URL).Msg("transport error retrying")
			if serr := c.sleep(ctx, back); serr != nil {
				return nil, perr.FromTransportf(serr, "%s %s cancelled", method, req.URL)
			}
			attempts++
			continue
		}

		c.log.Debug().
			Str("method", method).
			Str("url", req.URL).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("forge http response")

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
			_ = resp.Body.Close()
			if err != nil {
				return nil, perr.FromTransportf(err, "read body %s", req.URL)
			}
			return &Response{Status: resp.StatusCode, Header: resp.Header, Body: body}, nil

		case retryableStatus(resp.StatusCode) && c.shouldRetry(attempts):
			wait := computeWait(resp.Header, c.now())
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			_ = drainAndClose(resp.Body)
			c.log.Warn().Int("status", resp.StatusCode).Dur("retry_in", wait).Int("attempt", attempts).Msg("transient remote status retrying")
			if serr := c.sleep(ctx, wait); serr != nil {
				return nil, perr.FromTransportf(serr, "%s %s cancelled", method, req.URL)
			}
			attempts++
			continue

		default:
			// keep a small tail for diagnostics; it never reaches callers of the API
			tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			_ = resp.Body.Close()
			se := &perr.StatusError{Status: resp.StatusCode, Body: string(tail), Header: resp.Header}
			return nil, perr.FromTransportf(se, "%s %s", method, req.URL)
		}
	}
}

// Get is Do with GET and optional headers
func (c *Client) Get(ctx context.Context, url string, h http.Header) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url, Header: h})
}

// GetJSON performs a GET and decodes the JSON body into v
func (c *Client) GetJSON(ctx context.Context, url string, h http.Header, v any) (*Response, error) {
	if h == nil {
		h = http.Header{}
	}
	if h.Get("Accept") == "" {
		h.Set("Accept", "application/json")
	}
	resp, err := c.Get(ctx, url, h)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return resp, perr.Wrapf(err, perr.ErrorCodeUpstream, "decode %s", url)
	}
	return resp, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func bodyReader(b []byte) io.Reader {
	if b == nil {
		return nil
	}
	return bytes.NewReader(b)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
