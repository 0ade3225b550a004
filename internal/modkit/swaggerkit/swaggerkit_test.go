package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "forgeapi/internal/platform/net/http"
)

func serve(t *testing.T, enabled bool, path string) *httptest.ResponseRecorder {
	t.Helper()
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), enabled)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMount_Disabled(t *testing.T) {
	if rec := serve(t, false, "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDocJSON(t *testing.T) {
	rec := serve(t, true, "/api/docs/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("doc is not json: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	paths, _ := spec["paths"].(map[string]any)
	if _, ok := paths["/forge/discover/{host}"]; !ok {
		t.Fatalf("discover path missing")
	}
	op := paths["/meta/health"].(map[string]any)["get"].(map[string]any)
	resps := op["responses"].(map[string]any)
	if _, ok := resps["500"]; !ok {
		t.Fatalf("default 500 not injected")
	}
	if _, ok := resps["400"]; !ok {
		t.Fatalf("default 400 not injected")
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
}

func TestDocJSON_BadSpec(t *testing.T) {
	orig := docReader
	t.Cleanup(func() { docReader = orig })
	docReader = func() string { return "{" }

	if rec := serve(t, true, "/api/docs/doc.json"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMutators(t *testing.T) {
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), true, nil, TitleSuffix("staging"), TitleSuffix(""), KindEnum([]string{"gitlab", "forgejo"}))
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))

	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("doc is not json: %v", err)
	}
	if title := spec["info"].(map[string]any)["title"].(string); !strings.HasSuffix(title, " staging") {
		t.Fatalf("title = %q", title)
	}

	op := spec["paths"].(map[string]any)["/forge/repo/{kind}/{owner}/{repo}"].(map[string]any)["get"].(map[string]any)
	var enum []any
	for _, p := range op["parameters"].([]any) {
		if param := p.(map[string]any); param["name"] == "kind" {
			enum = param["schema"].(map[string]any)["enum"].([]any)
		}
	}
	if len(enum) != 2 || enum[0] != "gitlab" || enum[1] != "forgejo" {
		t.Fatalf("kind enum = %v", enum)
	}
}

func TestMount_RedirectsBarePath(t *testing.T) {
	rec := serve(t, true, "/api/docs")
	if rec.Code != http.StatusPermanentRedirect || rec.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("redirect = %d %v", rec.Code, rec.Header())
	}
}

func TestEnsureServers_Swagger2(t *testing.T) {
	spec := map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/api/v1")
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	if _, ok := spec["swagger"]; ok {
		t.Fatalf("swagger key kept")
	}
}
