// Package github is the forge adapter for github.com and GitHub Enterprise Server
package github

import (
	"context"
	"net/http"
	"net/url"

	"forgeapi/internal/adapters/forge/transport"
	"forgeapi/internal/core/forge"
	"forgeapi/internal/platform/logger"
)

const flagshipHost = "github.com"

// Options configures the adapter
type Options struct {
	Client *transport.Client
	// Token is an optional static token, sent only to its bound hosts
	Token  transport.Credential
	Scheme string
}

// Adapter serves every operation against the GitHub REST v3 API
type Adapter struct {
	c      *transport.Client
	cred   transport.Credential
	scheme string
	log    logger.Logger
}

var (
	_ forge.RepositoryLooker = (*Adapter)(nil)
	_ forge.LatestReleaser   = (*Adapter)(nil)
	_ forge.VersionResolver  = (*Adapter)(nil)
	_ forge.BranchResolver   = (*Adapter)(nil)
)

// New creates the adapter over a shared transport
func New(o Options) *Adapter {
	if o.Client == nil {
		o.Client = transport.New(transport.Options{})
	}
	if o.Scheme == "" {
		o.Scheme = "https"
	}
	return &Adapter{c: o.Client, cred: o.Token, scheme: o.Scheme, log: *logger.Named("github")}
}

// Kind implements forge.Adapter
func (a *Adapter) Kind() forge.Kind { return forge.KindGitHub }

// apiBase returns the REST root for host; github.com uses the api subdomain, GHES serves /api/v3
func (a *Adapter) apiBase(host string) string {
	if host == flagshipHost {
		return a.scheme + "://api.github.com"
	}
	return a.scheme + "://" + host + "/api/v3"
}

func (a *Adapter) webBase(host string) string {
	return a.scheme + "://" + host
}

func (a *Adapter) headers(host string) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/vnd.github+json")
	h.Set("X-GitHub-Api-Version", "2022-11-28")
	if tok := a.cred.For(host); tok != "" {
		h.Set("Authorization", "Bearer "+tok)
	}
	return h
}

func (a *Adapter) get(ctx context.Context, host, path string, v any) error {
	_, err := a.c.GetJSON(ctx, a.apiBase(host)+path, a.headers(host), v)
	return err
}

func repoPath(req forge.Request) string {
	return "/repos/" + url.PathEscape(req.Owner) + "/" + url.PathEscape(req.Repo)
}

// archiveURL builds the web tarball link; tags use the unambiguous refs/tags form
func (a *Adapter) archiveURL(req forge.Request, ref string, isTag bool) string {
	base := a.webBase(req.Host) + "/" + req.Owner + "/" + req.Repo + "/archive/"
	if isTag {
		return base + "refs/tags/" + transport.EscapeRef(ref) + ".tar.gz"
	}
	return base + transport.EscapeRef(ref) + ".tar.gz"
}
