package transport

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// RateState is what a remote told us about its rate limit on the last answer
type RateState struct {
	Remaining  int
	Reset      time.Time
	RetryAfter int
}

// ParseRateHeaders reads the X-RateLimit-* and Retry-After headers GitHub, GitLab and Forgejo share
func ParseRateHeaders(h http.Header) RateState {
	var s RateState
	s.Remaining = atoi(h.Get("X-RateLimit-Remaining"), -1)
	if rs := h.Get("X-RateLimit-Reset"); rs != "" {
		if sec := atoi(rs, 0); sec > 0 {
			s.Reset = time.Unix(int64(sec), 0).UTC()
		}
	}
	s.RetryAfter = atoi(h.Get("Retry-After"), 0)
	return s
}

// computeWait decides how long to wait based on headers, capped at maxBackoff
// 0 means the headers said nothing useful
func computeWait(h http.Header, now time.Time) time.Duration {
	s := ParseRateHeaders(h)
	var d time.Duration
	switch {
	case s.RetryAfter > 0:
		d = time.Duration(s.RetryAfter) * time.Second
	case s.Remaining == 0 && !s.Reset.IsZero() && s.Reset.After(now):
		d = s.Reset.Sub(now)
	}
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

func retryableStatus(s int) bool {
	switch s {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
