// Package http provides http transport for forge lookups
package http

import (
	stderrs "errors"
	stdhttp "net/http"

	"forgeapi/internal/core/forge"
	"forgeapi/internal/modkit/httpkit"
	perr "forgeapi/internal/platform/errors"
	"forgeapi/internal/services/api/forge/domain"
	svc "forgeapi/internal/services/api/forge/service"
)

// lookup routes; ref-taking operations end in a wildcard so refs may contain slashes
var lookups = []struct {
	path string
	op   forge.Operation
	ref  bool
}{
	{"/repo", forge.OpRepository, false},
	{"/latest", forge.OpLatestRelease, false},
	{"/version", forge.OpVersion, true},
	{"/branch", forge.OpBranch, true},
}

// Register mounts forge endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	for _, l := range lookups {
		tail := "/{owner}/{repo}"
		if l.ref {
			tail += "/*"
		}

		// explicit host first; a kind named "host" is never valid
		httpkit.Get(r, l.path+"/host/{host}"+tail, literal(h.lookup(l.op)))
		httpkit.Get(r, l.path+"/{kind}"+tail, literal(h.lookup(l.op)))

		r.Get("/tarball"+l.path+"/host/{host}"+tail, h.tarball(l.op))
		r.Get("/tarball"+l.path+"/{kind}"+tail, h.tarball(l.op))
	}

	// discovery only
	httpkit.Get(r, "/discover/{host}", literal(h.discover))
}

// literal answers forge failures with the bare plain text message
// validation and other project errors keep the JSON envelope
func literal(fn func(*stdhttp.Request) (any, error)) func(*stdhttp.Request) (any, error) {
	return func(r *stdhttp.Request) (any, error) {
		out, err := fn(r)
		var fe *forge.Error
		if err != nil && stderrs.As(err, &fe) {
			return httpkit.PlainText(perr.HTTPStatus(err), perr.WireFrom(err).Message), nil
		}
		return out, err
	}
}

type handlers struct{ svc svc.Service }

func targetFrom(r *stdhttp.Request) domain.TargetInput {
	return domain.TargetInput{
		Kind:  httpkit.Param(r, "kind"),
		Host:  httpkit.Param(r, "host"),
		Owner: httpkit.Param(r, "owner"),
		Repo:  httpkit.Param(r, "repo"),
		Ref:   httpkit.Param(r, "*"),
	}
}

// swagger:route GET /forge/repo/{kind}/{owner}/{repo} Forge forgeRepository
// @Summary Repository metadata; /forge/repo/host/{host}/{owner}/{repo} discovers the forge from the host
// @Tags Forge
// @Produce json
// @Param kind path string true "forge kind" Enums(github, gitlab, forgejo, sourcehut, flakehub)
// @Param owner path string true "owner or group, nested groups as %2F"
// @Param repo path string true "repository"
// @Success 200 {object} forge.Result "ok"
// @Failure 400 {object} httpkit.Envelope "invalid kind, owner, repo or ref"
// @Failure 404 {string} string "endpoint not available for this forge"
// @Failure 500 {string} string "error communicating with the remote server"
// @Router /forge/repo/{kind}/{owner}/{repo} [get]
func (h *handlers) lookup(op forge.Operation) func(*stdhttp.Request) (any, error) {
	return func(r *stdhttp.Request) (any, error) {
		return h.svc.Lookup(r.Context(), op, targetFrom(r))
	}
}

// swagger:route GET /forge/tarball/version/{kind}/{owner}/{repo}/{ref} Forge forgeTarball
// @Summary Redirects to the source archive; repo, latest, version and branch variants exist for kind and host routes
// @Tags Forge
// @Produce plain
// @Param kind path string true "forge kind"
// @Param owner path string true "owner"
// @Param repo path string true "repository"
// @Param ref path string true "tag or version"
// @Success 307 "redirect to the archive"
// @Failure 404 {string} string "endpoint not available for this forge"
// @Failure 500 {string} string "error communicating with the remote server"
// @Router /forge/tarball/version/{kind}/{owner}/{repo}/{ref} [get]
func (h *handlers) tarball(op forge.Operation) httpkit.Handler {
	return httpkit.Handle(func(r *stdhttp.Request) httpkit.Response {
		out, err := h.svc.Tarball(r.Context(), op, targetFrom(r))
		if err != nil {
			return httpkit.PlainText(perr.HTTPStatus(err), perr.WireFrom(err).Message)
		}
		return httpkit.Redirect(out.URL)
	})
}

// swagger:route GET /forge/discover/{host} Forge forgeDiscover
// @Summary Which forge serves host, and which strategy decided it
// @Tags Forge
// @Produce json
// @Param host path string true "host name"
// @Success 200 {object} domain.DiscoverResponse "ok"
// @Failure 400 {object} httpkit.Envelope "invalid host"
// @Failure 404 {string} string "endpoint not available for this forge"
// @Router /forge/discover/{host} [get]
func (h *handlers) discover(r *stdhttp.Request) (any, error) {
	return h.svc.Discover(r.Context(), domain.DiscoverInput{Host: httpkit.Param(r, "host")})
}
