package github

import (
	"context"
	"fmt"
	"net/http"

	"forgeapi/internal/adapters/forge/transport"
	"forgeapi/internal/core/forge"
	perr "forgeapi/internal/platform/errors"
)

// Repository performs GET /repos/{owner}/{repo}
func (a *Adapter) Repository(ctx context.Context, req forge.Request) (forge.Result, error) {
	var r repo
	if err := a.get(ctx, req.Host, repoPath(req), &r); err != nil {
		return forge.Result{}, err
	}
	info := &forge.RepoInfo{
		FullName:      r.FullName,
		Description:   r.Description,
		DefaultBranch: r.DefaultBranch,
		WebURL:        r.HTMLURL,
		Stars:         r.Stargazers,
		Archived:      r.Archived,
	}
	if r.License != nil {
		info.License = r.License.SPDXID
	}
	res := a.result(req)
	res.Ref = r.DefaultBranch
	res.Repository = info
	if r.DefaultBranch != "" {
		res.TarballURL = a.archiveURL(req, r.DefaultBranch, false)
	}
	return res, nil
}

// LatestRelease performs GET /repos/{owner}/{repo}/releases/latest
// repositories without releases fall back to the newest tag
func (a *Adapter) LatestRelease(ctx context.Context, req forge.Request) (forge.Result, error) {
	var rel release
	err := a.get(ctx, req.Host, repoPath(req)+"/releases/latest", &rel)
	switch {
	case err == nil && rel.TagName != "":
		return a.tagResult(req, rel.TagName), nil
	case err != nil && perr.StatusOf(err) != http.StatusNotFound:
		return forge.Result{}, err
	}

	a.log.Debug().Str("repo", req.Owner+"/"+req.Repo).Msg("no github release, falling back to tags")
	var tags []tag
	if err := a.get(ctx, req.Host, repoPath(req)+"/tags?per_page=1", &tags); err != nil {
		return forge.Result{}, err
	}
	if len(tags) == 0 {
		return forge.Result{}, perr.Upstreamf("%s/%s has no releases or tags", req.Owner, req.Repo)
	}
	return a.tagResult(req, tags[0].Name), nil
}

// Version performs GET /repos/{owner}/{repo}/git/ref/tags/{ref} to confirm the tag exists
func (a *Adapter) Version(ctx context.Context, req forge.Request) (forge.Result, error) {
	var ref gitRef
	if err := a.get(ctx, req.Host, repoPath(req)+"/git/ref/tags/"+transport.EscapeRef(req.Ref), &ref); err != nil {
		return forge.Result{}, err
	}
	if ref.Object.SHA == "" {
		return forge.Result{}, fmt.Errorf("github: tag %s resolved without object", req.Ref)
	}
	return a.tagResult(req, req.Ref), nil
}

// Branch performs GET /repos/{owner}/{repo}/branches/{ref}
func (a *Adapter) Branch(ctx context.Context, req forge.Request) (forge.Result, error) {
	var b branch
	if err := a.get(ctx, req.Host, repoPath(req)+"/branches/"+transport.EscapeRef(req.Ref), &b); err != nil {
		return forge.Result{}, err
	}
	res := a.result(req)
	res.Ref = req.Ref
	res.Version = b.Commit.SHA
	res.TarballURL = a.archiveURL(req, req.Ref, false)
	return res, nil
}

func (a *Adapter) result(req forge.Request) forge.Result {
	return forge.Result{Kind: forge.KindGitHub, Host: req.Host, Owner: req.Owner, Repo: req.Repo}
}

func (a *Adapter) tagResult(req forge.Request, tag string) forge.Result {
	res := a.result(req)
	res.Ref = tag
	res.Version = tag
	res.TarballURL = a.archiveURL(req, tag, true)
	return res
}
