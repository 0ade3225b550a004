package httpkit

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "forgeapi/internal/platform/errors"
	phttp "forgeapi/internal/platform/net/http"
)

type discovered struct {
	Host string `json:"host"`
	Kind string `json:"kind"`
}

func serve(m *chi.Mux, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestGet_EnvelopeAndHead(t *testing.T) {
	m := chi.NewRouter()
	Get(phttp.AdaptChi(m), "/discover/{host}", func(r *http.Request) (any, error) {
		return discovered{Host: Param(r, "host"), Kind: "gitlab"}, nil
	})

	rec := serve(m, http.MethodGet, "/discover/gitlab.gnome.org")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env struct {
		StatusCode int        `json:"status_code"`
		Data       discovered `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != http.StatusOK || env.Data.Host != "gitlab.gnome.org" {
		t.Fatalf("env = %+v", env)
	}

	head := serve(m, http.MethodHead, "/discover/gitlab.gnome.org")
	if head.Code != http.StatusOK || head.Body.Len() != 0 {
		t.Fatalf("head = %d %q", head.Code, head.Body.String())
	}
	if head.Header().Get("Content-Type") == "" {
		t.Fatalf("head should keep headers")
	}
}

func TestCall_ErrorsAndResponses(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	Get(r, "/missing", func(*http.Request) (any, error) {
		return nil, perr.New(perr.ErrorCodeNotFound, "endpoint not available for this forge")
	})
	Get(r, "/foreign", func(*http.Request) (any, error) { return nil, errors.New("boom") })
	Get(r, "/redirect", func(*http.Request) (any, error) {
		return Redirect("https://codeload.github.com/NixOS/nix/tar.gz/refs/tags/2.24.0"), nil
	})

	rec := serve(m, http.MethodGet, "/missing")
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if rec.Code != http.StatusNotFound || env.Error != "endpoint not available for this forge" {
		t.Fatalf("missing = %d %+v", rec.Code, env)
	}

	if rec := serve(m, http.MethodGet, "/foreign"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("foreign = %d", rec.Code)
	}

	rec = serve(m, http.MethodGet, "/redirect")
	if rec.Code != http.StatusTemporaryRedirect || rec.Header().Get("Location") == "" || rec.Body.Len() != 0 {
		t.Fatalf("redirect = %d %v", rec.Code, rec.Header())
	}
}

func TestHandle_PlainText(t *testing.T) {
	m := chi.NewRouter()
	phttp.AdaptChi(m).Get("/tarball", Handle(func(*http.Request) Response {
		return PlainText(http.StatusNotFound, "flagship instance unavailable for this forge")
	}))

	rec := serve(m, http.MethodGet, "/tarball")
	if rec.Code != http.StatusNotFound || rec.Body.String() != "flagship instance unavailable for this forge" {
		t.Fatalf("tarball = %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestOKAndError(t *testing.T) {
	if r := OK("x"); r.Status != http.StatusOK || r.Body != "x" {
		t.Fatalf("OK = %+v", r)
	}
	if r := Error(perr.New(perr.ErrorCodeValidation, "owner is a required field")); r.Status != http.StatusBadRequest {
		t.Fatalf("Error = %+v", r)
	}
}

func TestMountAPI(t *testing.T) {
	m := chi.NewRouter()
	var hits int
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	}
	MountAPIV1(phttp.AdaptChi(m), []func(http.Handler) http.Handler{mw}, func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})
	MountAPI(phttp.AdaptChi(m), "/v2/", nil, func(api Router) {
		Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})

	if rec := serve(m, http.MethodGet, "/api/v1/ping"); rec.Code != http.StatusOK || hits != 1 {
		t.Fatalf("v1 = %d hits=%d", rec.Code, hits)
	}
	if rec := serve(m, http.MethodGet, "/api/v2/ping"); rec.Code != http.StatusOK || hits != 1 {
		t.Fatalf("v2 = %d hits=%d", rec.Code, hits)
	}
	if rec := serve(m, http.MethodGet, "/ping"); rec.Code != http.StatusNotFound {
		t.Fatalf("unscoped = %d", rec.Code)
	}
}
