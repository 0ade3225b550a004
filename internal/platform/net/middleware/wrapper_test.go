package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"forgeapi/internal/platform/net/middleware"
)

func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, strings.Repeat("a", 4<<10))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	middleware.Compress(flate.DefaultCompression)(h).ServeHTTP(rr, req)

	if rr.Result().Header.Get("Content-Encoding") == "" {
		t.Fatalf("expected Content-Encoding to be set")
	}
}

func TestCORS_ReadOnlyDefaults(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://ui.example"}})
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	preflight := func(method string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/forge/repo/github/a/b", nil)
		req.Header.Set("Origin", "https://ui.example")
		req.Header.Set("Access-Control-Request-Method", method)
		rr := httptest.NewRecorder()
		cors(h).ServeHTTP(rr, req)
		return rr
	}

	if got := preflight(http.MethodGet).Header().Get("Access-Control-Allow-Methods"); got != http.MethodGet {
		t.Fatalf("GET preflight allow methods = %q", got)
	}
	if got := preflight(http.MethodDelete).Header().Get("Access-Control-Allow-Methods"); got != "" {
		t.Fatalf("DELETE must not be allowed, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/forge/tarball/github/a/b", nil)
	req.Header.Set("Origin", "https://ui.example")
	rr := httptest.NewRecorder()
	cors(h).ServeHTTP(rr, req)
	if !strings.Contains(rr.Header().Get("Access-Control-Expose-Headers"), "Location") {
		t.Fatalf("expose headers = %q", rr.Header().Get("Access-Control-Expose-Headers"))
	}
}

func TestRequestIDAndRealIP(t *testing.T) {
	var gotID, gotAddr string
	h := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = chimw.GetReqID(r.Context())
		gotAddr = r.RemoteAddr
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	chain(h, middleware.RequestID(), middleware.RealIP()).ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "rid-1" || gotAddr != "203.0.113.9" {
		t.Fatalf("id = %q addr = %q", gotID, gotAddr)
	}
}

func TestTimeout_CancelsContext(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})
	rr := httptest.NewRecorder()
	middleware.Timeout(10*time.Millisecond)(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestSlashesNoCacheHeartbeat(t *testing.T) {
	var path string
	h := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { path = r.URL.Path })

	rr := httptest.NewRecorder()
	chain(h, middleware.NoCache(), middleware.StripSlashes()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/forge/discover/codeberg.org/", nil))
	if path != "/forge/discover/codeberg.org" || rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("path = %q cache = %q", path, rr.Header().Get("Cache-Control"))
	}

	rr = httptest.NewRecorder()
	middleware.RedirectSlashes()(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/forge/discover/", nil))
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("redirect status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	middleware.Heartbeat("/health")(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "." {
		t.Fatalf("heartbeat = %d %q", rr.Code, rr.Body.String())
	}
}
