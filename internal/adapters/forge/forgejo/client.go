// Package forgejo is the forge adapter for Forgejo instances (codeberg.org and self-hosted)
// Gitea speaks the same /api/v1 dialect and is served by this adapter too
package forgejo

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
}

// Adapter serves every operation against the Forgejo /api/v1 API
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
	return &Adapter{c: o.Client, cred: o.Token, scheme: o.Scheme, log: *logger.Named("forgejo")}
}

// Kind implements forge.Adapter
func (a *Adapter) Kind() forge.Kind { return forge.KindForgejo }

type repo struct {
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Stars         int    `json:"stars_count"`
	Archived      bool   `json:"archived"`
	HTMLURL       string `json:"html_url"`
}

type release struct {
	TagName string `json:"tag_name"`
}

type tag struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

type branch struct {
	Name   string `json:"name"`
	Commit struct {
		ID string `json:"id"`
	} `json:"commit"`
}

// Repository performs GET /repos/{owner}/{repo}
func (a *Adapter) Repository(ctx context.Context, req forge.Request) (forge.Result, error) {
	var r repo
	if err := a.get(ctx, req, "", &r); err != nil {
		return forge.Result{}, err
	}
	res := a.result(req)
	res.Ref = r.DefaultBranch
	res.Repository = &forge.RepoInfo{
		FullName:      r.FullName,
		Description:   r.Description,
		DefaultBranch: r.DefaultBranch,
		WebURL:        r.HTMLURL,
		Stars:         r.Stars,
		Archived:      r.Archived,
	}
	if r.DefaultBranch != "" {
		res.TarballURL = a.archiveURL(req, r.DefaultBranch)
	}
	return res, nil
}

// LatestRelease performs GET /repos/{owner}/{repo}/releases/latest, falling back to the newest tag
func (a *Adapter) LatestRelease(ctx context.Context, req forge.Request) (forge.Result, error) {
	var rel release
	err := a.get(ctx, req, "/releases/latest", &rel)
	switch {
	case err == nil && rel.TagName != "":
		return a.refResult(req, rel.TagName), nil
	case err != nil && perr.StatusOf(err) != http.StatusNotFound:
		return forge.Result{}, err
	}

	a.log.Debug().Str("repo", req.Owner+"/"+req.Repo).Msg("no forgejo release, falling back to tags")
	var tags []tag
	if err := a.get(ctx, req, "/tags?limit=1", &tags); err != nil {
		return forge.Result{}, err
	}
	if len(tags) == 0 {
		return forge.Result{}, perr.Upstreamf("%s/%s has no releases or tags", req.Owner, req.Repo)
	}
	return a.refResult(req, tags[0].Name), nil
}

// Version performs GET /repos/{owner}/{repo}/tags/{tag}
func (a *Adapter) Version(ctx context.Context, req forge.Request) (forge.Result, error) {
	var t tag
	if err := a.get(ctx, req, "/tags/"+url.PathEscape(req.Ref), &t); err != nil {
		return forge.Result{}, err
	}
	return a.refResult(req, req.Ref), nil
}

// Branch performs GET /repos/{owner}/{repo}/branches/{branch}
func (a *Adapter) Branch(ctx context.Context, req forge.Request) (forge.Result, error) {
	var b branch
	if err := a.get(ctx, req, "/branches/"+url.PathEscape(req.Ref), &b); err != nil {
		return forge.Result{}, err
	}
	res := a.refResult(req, req.Ref)
	res.Version = b.Commit.ID
	return res, nil
}

func (a *Adapter) get(ctx context.Context, req forge.Request, suffix string, v any) error {
	h := http.Header{}
	if tok := a.cred.For(req.Host); tok != "" {
		h.Set("Authorization", "token "+tok)
	}
	u := transport.BaseURL(a.scheme, req.Host) + "/api/v1/repos/" +
		url.PathEscape(req.Owner) + "/" + url.PathEscape(req.Repo) + suffix
	_, err := a.c.GetJSON(ctx, u, h, v)
	return err
}

func (a *Adapter) archiveURL(req forge.Request, ref string) string {
	return transport.BaseURL(a.scheme, req.Host) + "/" + req.Owner + "/" + req.Repo +
		"/archive/" + transport.EscapeRef(ref) + ".tar.gz"
}

func (a *Adapter) result(req forge.Request) forge.Result {
	return forge.Result{Kind: forge.KindForgejo, Host: req.Host, Owner: req.Owner, Repo: req.Repo}
}

func (a *Adapter) refResult(req forge.Request, name string) forge.Result {
	res := a.result(req)
	res.Ref = name
	res.Version = name
	res.TarballURL = a.archiveURL(req, name)
	return res
}
