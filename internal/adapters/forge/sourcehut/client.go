// Package sourcehut is the forge adapter for git.sr.ht and self-hosted sr.ht instances
// sr.ht exposes no unauthenticated repository API, so the adapter reads the public RSS feeds
package sourcehut

import (
	"context"
	"encoding/xml"
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

// Adapter serves latest release, version and branch; repository lookup is not offered
type Adapter struct {
	c      *transport.Client
	cred   transport.Credential
	scheme string
	log    logger.Logger
}

var (
	_ forge.LatestReleaser  = (*Adapter)(nil)
	_ forge.VersionResolver = (*Adapter)(nil)
	_ forge.BranchResolver  = (*Adapter)(nil)
)

// New creates the adapter over a shared transport
func New(o Options) *Adapter {
	if o.Client == nil {
		o.Client = transport.New(transport.Options{})
	}
	return &Adapter{c: o.Client, cred: o.Token, scheme: o.Scheme, log: *logger.Named("sourcehut")}
}

// Kind implements forge.Adapter
func (a *Adapter) Kind() forge.Kind { return forge.KindSourceHut }

type feed struct {
	Channel struct {
		Items []item `xml:"item"`
	} `xml:"channel"`
}

type item struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
	GUID  string `xml:"guid"`
}

// LatestRelease reads /~owner/repo/refs/rss.xml; the newest ref comes first
func (a *Adapter) LatestRelease(ctx context.Context, req forge.Request) (forge.Result, error) {
	items, err := a.feed(ctx, req, "/refs/rss.xml")
	if err != nil {
		return forge.Result{}, err
	}
	if len(items) == 0 {
		return forge.Result{}, perr.Upstreamf("~%s/%s has no refs", req.Owner, req.Repo)
	}
	return a.refResult(req, strings.TrimSpace(items[0].Title)), nil
}

// Version confirms the ref exists in the refs feed
func (a *Adapter) Version(ctx context.Context, req forge.Request) (forge.Result, error) {
	items, err := a.feed(ctx, req, "/refs/rss.xml")
	if err != nil {
		return forge.Result{}, err
	}
	for _, it := range items {
		if strings.TrimSpace(it.Title) == req.Ref {
			return a.refResult(req, req.Ref), nil
		}
	}
	a.log.Debug().Str("repo", req.Owner+"/"+req.Repo).Str("ref", req.Ref).Msg("ref not in refs feed")
	return forge.Result{}, forge.ErrEndpointUnavailable
}

// Branch reads /~owner/repo/log/{branch}/rss.xml and pins the head commit
func (a *Adapter) Branch(ctx context.Context, req forge.Request) (forge.Result, error) {
	items, err := a.feed(ctx, req, "/log/"+transport.EscapeRef(req.Ref)+"/rss.xml")
	if err != nil {
		return forge.Result{}, err
	}
	res := a.refResult(req, req.Ref)
	if len(items) > 0 {
		res.Version = commitFromLink(items[0].Link)
		if res.Version == "" {
			res.Version = commitFromLink(items[0].GUID)
		}
	}
	return res, nil
}

func (a *Adapter) feed(ctx context.Context, req forge.Request, suffix string) ([]item, error) {
	h := http.Header{}
	h.Set("Accept", "application/rss+xml, application/xml;q=0.9")
	if tok := a.cred.For(req.Host); tok != "" {
		h.Set("Authorization", "Bearer "+tok)
	}
	resp, err := a.c.Get(ctx, a.repoURL(req)+suffix, h)
	if err != nil {
		return nil, err
	}
	var f feed
	if err := xml.Unmarshal(resp.Body, &f); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "decode sourcehut feed ~%s/%s", req.Owner, req.Repo)
	}
	return f.Channel.Items, nil
}

// gitHost maps the bare sr.ht domain to its git service
func gitHost(host string) string {
	if host == "sr.ht" {
		return "git.sr.ht"
	}
	return host
}

func (a *Adapter) repoURL(req forge.Request) string {
	return transport.BaseURL(a.scheme, gitHost(req.Host)) + "/~" + url.PathEscape(req.Owner) + "/" + url.PathEscape(req.Repo)
}

func (a *Adapter) refResult(req forge.Request, ref string) forge.Result {
	return forge.Result{
		Kind:       forge.KindSourceHut,
		Host:       req.Host,
		Owner:      req.Owner,
		Repo:       req.Repo,
		Ref:        ref,
		Version:    ref,
		TarballURL: a.repoURL(req) + "/archive/" + transport.EscapeRef(ref) + ".tar.gz",
	}
}

// commitFromLink extracts the sha from .../commit/<sha>
func commitFromLink(link string) string {
	_, sha, ok := strings.Cut(link, "/commit/")
	if !ok {
		return ""
	}
	sha, _, _ = strings.Cut(sha, "/")
	return strings.TrimSpace(sha)
}
