// Package gitlab is the forge adapter for gitlab.com and self-managed GitLab
package gitlab

import (
	"context"
	"net/http"
	"net/url"
	"strings"

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

// Adapter serves every operation against the GitLab REST v4 API
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
	return &Adapter{c: o.Client, cred: o.Token, scheme: o.Scheme, log: *logger.Named("gitlab")}
}

// Kind implements forge.Adapter
func (a *Adapter) Kind() forge.Kind { return forge.KindGitLab }

type project struct {
	PathWithNamespace string   `json:"path_with_namespace"`
	Description       string   `json:"description"`
	DefaultBranch     string   `json:"default_branch"`
	StarCount         int      `json:"star_count"`
	Archived          bool     `json:"archived"`
	WebURL            string   `json:"web_url"`
	License           *license `json:"license"`
}

type license struct {
	Key      string `json:"key"`
	Nickname string `json:"nickname"`
}

type release struct {
	TagName string `json:"tag_name"`
}

type ref struct {
	Name   string `json:"name"`
	Commit struct {
		ID string `json:"id"`
	} `json:"commit"`
}

// Repository performs GET /projects/{id}?license=true
func (a *Adapter) Repository(ctx context.Context, req forge.Request) (forge.Result, error) {
	var p project
	if err := a.get(ctx, req, "?license=true", &p); err != nil {
		return forge.Result{}, err
	}
	info := &forge.RepoInfo{
		FullName:      p.PathWithNamespace,
		Description:   p.Description,
		DefaultBranch: p.DefaultBranch,
		WebURL:        p.WebURL,
		Stars:         p.StarCount,
		Archived:      p.Archived,
	}
	if p.License != nil {
		info.License = strings.ToUpper(p.License.Key)
	}
	res := a.result(req)
	res.Ref = p.DefaultBranch
	res.Repository = info
	if p.DefaultBranch != "" {
		res.TarballURL = a.archiveURL(req, p.DefaultBranch)
	}
	return res, nil
}

// LatestRelease performs GET /projects/{id}/releases/permalink/latest, falling back to the newest tag
func (a *Adapter) LatestRelease(ctx context.Context, req forge.Request) (forge.Result, error) {
	var rel release
	err := a.get(ctx, req, "/releases/permalink/latest", &rel)
	switch {
	case err == nil && rel.TagName != "":
		return a.refResult(req, rel.TagName), nil
	case err != nil && perr.StatusOf(err) != http.StatusNotFound:
		return forge.Result{}, err
	}

	a.log.Debug().Str("project", req.Owner+"/"+req.Repo).Msg("no gitlab release, falling back to tags")
	var tags []ref
	if err := a.get(ctx, req, "/repository/tags?order_by=updated&sort=desc&per_page=1", &tags); err != nil {
		return forge.Result{}, err
	}
	if len(tags) == 0 {
		return forge.Result{}, perr.Upstreamf("%s/%s has no releases or tags", req.Owner, req.Repo)
	}
	return a.refResult(req, tags[0].Name), nil
}

// Version performs GET /projects/{id}/repository/tags/{ref}
func (a *Adapter) Version(ctx context.Context, req forge.Request) (forge.Result, error) {
	var t ref
	if err := a.get(ctx, req, "/repository/tags/"+url.PathEscape(req.Ref), &t); err != nil {
		return forge.Result{}, err
	}
	if t.Name == "" {
		t.Name = req.Ref
	}
	return a.refResult(req, t.Name), nil
}

// Branch performs GET /projects/{id}/repository/branches/{ref}
func (a *Adapter) Branch(ctx context.Context, req forge.Request) (forge.Result, error) {
	var b ref
	if err := a.get(ctx, req, "/repository/branches/"+url.PathEscape(req.Ref), &b); err != nil {
		return forge.Result{}, err
	}
	res := a.refResult(req, req.Ref)
	res.Version = b.Commit.ID
	return res, nil
}

func (a *Adapter) get(ctx context.Context, req forge.Request, suffix string, v any) error {
	h := http.Header{}
	if tok := a.cred.For(req.Host); tok != "" {
		h.Set("PRIVATE-TOKEN", tok)
	}
	_, err := a.c.GetJSON(ctx, a.projectURL(req)+suffix, h, v)
	return err
}

// projectURL addresses the project by its url-encoded full path, which also covers nested groups
func (a *Adapter) projectURL(req forge.Request) string {
	return transport.BaseURL(a.scheme, req.Host) + "/api/v4/projects/" + url.PathEscape(req.Owner+"/"+req.Repo)
}

// archiveURL follows GitLab's /-/archive/<ref>/<repo>-<ref>.tar.gz shape
func (a *Adapter) archiveURL(req forge.Request, ref string) string {
	file := req.Repo + "-" + strings.ReplaceAll(ref, "/", "-") + ".tar.gz"
	return transport.BaseURL(a.scheme, req.Host) + "/" + req.Owner + "/" + req.Repo +
		"/-/archive/" + transport.EscapeRef(ref) + "/" + url.PathEscape(file)
}

func (a *Adapter) result(req forge.Request) forge.Result {
	return forge.Result{Kind: forge.KindGitLab, Host: req.Host, Owner: req.Owner, Repo: req.Repo}
}

func (a *Adapter) refResult(req forge.Request, name string) forge.Result {
	res := a.result(req)
	res.Ref = name
	res.Version = name
	res.TarballURL = a.archiveURL(req, name)
	return res
}
