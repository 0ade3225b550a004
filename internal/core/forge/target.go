package forge

import "strings"

// Target identifies a request destination
// Kind == KindUnknown means discovery must resolve the host first
// Host == "" means the flagship instance for Kind is used
type Target struct {
	Host  string
	Kind  Kind
	Owner string
	Repo  string
	Ref   string
}

// SplitPath splits "owner/repo" (leading/trailing slashes and a .git suffix tolerated)
// the owner may hold nested groups (GitLab), SourceHut style "~owner" becomes "owner"
func SplitPath(path string) (owner, repo string, ok bool) {
	p := strings.Trim(strings.TrimSpace(path), "/")
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "", "", false
	}
	owner = strings.TrimPrefix(p[:i], "~")
	repo = strings.TrimSuffix(p[i+1:], ".git")
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

// request builds the resolved adapter input for host
func (t Target) request(host string) Request {
	return Request{Host: host, Owner: t.Owner, Repo: t.Repo, Ref: t.Ref}
}
