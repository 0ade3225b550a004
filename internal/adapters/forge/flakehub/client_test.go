package flakehub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"forgeapi/internal/adapters/forge/transport"
	"forgeapi/internal/core/forge"
	perr "forgeapi/internal/platform/errors"
)

func newTestAdapter(t *testing.T, h http.Handler) (*Adapter, forge.Request) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	a := New(Options{Client: transport.New(transport.Options{}), APIBase: srv.URL})
	return a, forge.Request{Host: "flakehub.com", Owner: "NixOS", Repo: "nixpkgs"}
}

func TestBase(t *testing.T) {
	if got := New(Options{}).base("flakehub.com"); got != "https://api.flakehub.com" {
		t.Fatalf("base = %q", got)
	}
}

func TestCapabilities(t *testing.T) {
	a := New(Options{})
	if forge.Supports(a, forge.OpBranch) {
		t.Fatalf("flakehub must not offer branches")
	}
	if !forge.Supports(a, forge.OpRepository) || !forge.Supports(a, forge.OpVersion) {
		t.Fatalf("missing capability")
	}
}

func TestRepository(t *testing.T) {
	a, req := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/f/NixOS/nixpkgs" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"org":"NixOS","project":"nixpkgs","description":"Nix Packages collection"}`))
	}))
	res, err := a.Repository(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Repository.FullName != "NixOS/nixpkgs" || res.Repository.WebURL != "https://flakehub.com/flake/NixOS/nixpkgs" {
		t.Fatalf("repo = %+v", res.Repository)
	}
}

func TestLatestRelease(t *testing.T) {
	a, req := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/f/NixOS/nixpkgs/*" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"version":"0.2405.1+rev-abc","simplified_version":"0.2405.1","revision":"abc",
			"download_url":"https://api.flakehub.com/f/NixOS/nixpkgs/0.2405.1.tar.gz"}`))
	}))
	res, err := a.LatestRelease(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Version != "0.2405.1" || res.Ref != "abc" {
		t.Fatalf("res = %+v", res)
	}
	if res.TarballURL != "https://api.flakehub.com/f/NixOS/nixpkgs/0.2405.1.tar.gz" {
		t.Fatalf("tarball = %q", res.TarballURL)
	}
}

func TestVersion_NoDownloadURL(t *testing.T) {
	a, req := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":"1.0.0"}`))
	}))
	req.Ref = "1.0.0"
	_, err := a.Version(context.Background(), req)
	if perr.CodeOf(err) != perr.ErrorCodeUpstream {
		t.Fatalf("err = %v", err)
	}
}
