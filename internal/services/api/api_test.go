package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"forgeapi/internal/core/forge"
)

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_MountsModulesUnderV1(t *testing.T) {
	d := forge.NewDispatcher(forge.MustRegistry(), forge.NewDiscovery(forge.NewSuffixes(nil)), forge.NewFlagships(forge.DefaultFlagships))
	h := Handler(Options{Forge: d, EnableSwagger: true, LookupTimeout: time.Second})

	if rec := get(h, "/api/v1/meta/health"); rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}

	rec := get(h, "/api/v1/forge/discover/gitlab.com")
	var env struct {
		Data struct {
			Kind     string `json:"kind"`
			Strategy string `json:"strategy"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Data.Kind != "gitlab" || env.Data.Strategy != "suffix" {
		t.Fatalf("discover = %d %s", rec.Code, rec.Body.String())
	}

	rec = get(h, "/api/v1/forge/repo/github/NixOS/nix")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "endpoint not available for this forge") {
		t.Fatalf("repo without adapters = %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("common stack not applied")
	}

	if rec := get(h, "/api/docs/doc.json"); rec.Code != http.StatusOK {
		t.Fatalf("docs = %d", rec.Code)
	}
}

func TestHandler_SwaggerAndProfilerOff(t *testing.T) {
	h := Handler(Options{Forge: forge.NewDispatcher(forge.MustRegistry(), nil, nil)})
	if rec := get(h, "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("docs = %d", rec.Code)
	}
	if rec := get(h, "/debug/pprof/"); rec.Code != http.StatusNotFound {
		t.Fatalf("profiler = %d", rec.Code)
	}
}
