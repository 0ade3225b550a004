// Package flakehub is the adapter for the FlakeHub flake registry
// FlakeHub aggregates flakes published from other forges; it has releases but no branches
package flakehub

import (
	"context"
	"net/http"
	"net/url"

	"forgeapi/internal/adapters/forge/transport"
	"forgeapi/internal/core/forge"
	perr "forgeapi/internal/platform/errors"
	"forgeapi/internal/platform/logger"
)

// Options configures the adapter
type Options struct {
	Client *transport.Client
	// Token is an optional static token, sent only to its bound hosts
	Token  transport.Credential
	Scheme string

	// APIBase overrides the derived https://api.<host> root
	APIBase string
}

// Adapter serves repository, latest release and version against the FlakeHub API
type Adapter struct {
	c       *transport.Client
	cred    transport.Credential
	scheme  string
	apiBase string
	log     logger.Logger
}

var (
	_ forge.RepositoryLooker = (*Adapter)(nil)
	_ forge.LatestReleaser   = (*Adapter)(nil)
	_ forge.VersionResolver  = (*Adapter)(nil)
)

// New creates the adapter over a shared transport
func New(o Options) *Adapter {
	if o.Client == nil {
		o.Client = transport.New(transport.Options{})
	}
	return &Adapter{c: o.Client, cred: o.Token, scheme: o.Scheme, apiBase: o.APIBase, log: *logger.Named("flakehub")}
}

// Kind implements forge.Adapter
func (a *Adapter) Kind() forge.Kind { return forge.KindFlakeHub }

type flake struct {
	Org         string `json:"org"`
	Project     string `json:"project"`
	Description string `json:"description"`
	Source      string `json:"source_github_owner_repo"`
}

type version struct {
	Version           string `json:"version"`
	SimplifiedVersion string `json:"simplified_version"`
	DownloadURL       string `json:"download_url"`
	Revision          string `json:"revision"`
}

// Repository performs GET /f/{org}/{project}
func (a *Adapter) Repository(ctx context.Context, req forge.Request) (forge.Result, error) {
	var f flake
	if err := a.get(ctx, req, "/f/"+a.path(req), &f); err != nil {
		return forge.Result{}, err
	}
	full := req.Owner + "/" + req.Repo
	if f.Org != "" && f.Project != "" {
		full = f.Org + "/" + f.Project
	}
	return forge.Result{
		Kind:  forge.KindFlakeHub,
		Host:  req.Host,
		Owner: req.Owner,
		Repo:  req.Repo,
		Repository: &forge.RepoInfo{
			FullName:    full,
			Description: f.Description,
			WebURL:      transport.BaseURL(a.scheme, req.Host) + "/flake/" + a.path(req),
		},
	}, nil
}

// LatestRelease performs GET /f/{org}/{project}/* which resolves the newest published version
func (a *Adapter) LatestRelease(ctx context.Context, req forge.Request) (forge.Result, error) {
	return a.version(ctx, req, "/f/"+a.path(req)+"/*")
}

// Version performs GET /version/{org}/{project}/{version}
func (a *Adapter) Version(ctx context.Context, req forge.Request) (forge.Result, error) {
	return a.version(ctx, req, "/version/"+a.path(req)+"/"+url.PathEscape(req.Ref))
}

func (a *Adapter) version(ctx context.Context, req forge.Request, path string) (forge.Result, error) {
	var v version
	if err := a.get(ctx, req, path, &v); err != nil {
		return forge.Result{}, err
	}
	if v.DownloadURL == "" {
		return forge.Result{}, perr.Upstreamf("flakehub returned no download url for %s/%s", req.Owner, req.Repo)
	}
	ver := v.SimplifiedVersion
	if ver == "" {
		ver = v.Version
	}
	return forge.Result{
		Kind:       forge.KindFlakeHub,
		Host:       req.Host,
		Owner:      req.Owner,
		Repo:       req.Repo,
		Ref:        v.Revision,
		Version:    ver,
		TarballURL: v.DownloadURL,
	}, nil
}

func (a *Adapter) get(ctx context.Context, req forge.Request, path string, v any) error {
	h := http.Header{}
	if tok := a.cred.For(req.Host); tok != "" {
		h.Set("Authorization", "Bearer "+tok)
	}
	_, err := a.c.GetJSON(ctx, a.base(req.Host)+path, h, v)
	return err
}

func (a *Adapter) base(host string) string {
	if a.apiBase != "" {
		return a.apiBase
	}
	return transport.BaseURL(a.scheme, "api."+host)
}

func (a *Adapter) path(req forge.Request) string {
	return url.PathEscape(req.Owner) + "/" + url.PathEscape(req.Repo)
}
