package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"forgeapi/internal/platform/net/middleware"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return m
}

func TestAccessLogZerolog_RoutePatternAndBytes(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	r := chi.NewRouter()
	r.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{Logger: &log}))
	r.Get("/repo/{kind}/{owner}/{repo}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hi"))
		_, _ = w.Write([]byte("there"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/repo/github/nixos/nixpkgs", nil))

	if rr.Body.String() != "hithere" {
		t.Fatalf("body = %q", rr.Body.String())
	}
	m := logLine(t, &buf)
	if m["route"] != "/repo/{kind}/{owner}/{repo}" || m["level"] != "info" {
		t.Fatalf("log = %v", m)
	}
	if m["bytes"] != float64(7) || m["status"] != float64(200) {
		t.Fatalf("log = %v", m)
	}
}

func TestAccessLogZerolog_Levels(t *testing.T) {
	cases := []struct {
		name   string
		slow   time.Duration
		status int
		want   string
	}{
		{"fast", 0, http.StatusNotFound, "info"},
		{"slow", time.Nanosecond, http.StatusOK, "warn"},
		{"remote failure", time.Nanosecond, http.StatusInternalServerError, "error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)
			mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: c.slow, Logger: &log})
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(50 * time.Microsecond)
				w.WriteHeader(c.status)
			})

			rr := httptest.NewRecorder()
			mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

			if rr.Code != c.status {
				t.Fatalf("status = %d", rr.Code)
			}
			if got := logLine(t, &buf)["level"]; got != c.want {
				t.Fatalf("level = %v want %s", got, c.want)
			}
		})
	}
}

func TestAccessLogZerolog_SkipsPaths(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{Skip: []string{"/health"}, Logger: &log})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, ".") })

	mw(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	if buf.Len() != 0 {
		t.Fatalf("heartbeat logged: %s", buf.String())
	}
}
