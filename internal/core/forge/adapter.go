package forge

import "context"

// Operation names a logical request against a forge
type Operation uint8

const (
	// OpRepository looks up repository metadata
	OpRepository Operation = iota + 1

	// OpLatestRelease resolves the newest release, or newest tag when the forge has no releases
	OpLatestRelease

	// OpVersion resolves a specific tag or version (Target.Ref)
	OpVersion

	// OpBranch resolves the head of a branch (Target.Ref)
	OpBranch
)

// Operations lists every operation in declaration order
var Operations = []Operation{OpRepository, OpLatestRelease, OpVersion, OpBranch}

var opNames = map[Operation]string{
	OpRepository:    "repository",
	OpLatestRelease: "latest-release",
	OpVersion:       "version",
	OpBranch:        "branch",
}

// String returns the operation name used in logs and routes
func (o Operation) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "unknown"
}

// ParseOperation maps a route or CLI name to an Operation
func ParseOperation(s string) (Operation, bool) {
	for op, name := range opNames {
		if name == s {
			return op, true
		}
	}
	return 0, false
}

// Request is a fully resolved adapter input. Host is never empty
type Request struct {
	Host  string
	Owner string
	Repo  string
	Ref   string
}

// RepoInfo is the normalized repository metadata
type RepoInfo struct {
	FullName      string `json:"full_name"`
	Description   string `json:"description,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	WebURL        string `json:"web_url,omitempty"`
	Stars         int    `json:"stars"`
	Archived      bool   `json:"archived"`
	License       string `json:"license,omitempty"`
}

// Result is the normalized response returned for every operation
type Result struct {
	Kind       Kind      `json:"kind"`
	Host       string    `json:"host"`
	Owner      string    `json:"owner"`
	Repo       string    `json:"repo"`
	Ref        string    `json:"ref,omitempty"`
	Version    string    `json:"version,omitempty"`
	TarballURL string    `json:"tarball_url,omitempty"`
	Repository *RepoInfo `json:"repository,omitempty"`
}

// Adapter is the minimal contract every backend satisfies
// the operations it supports are expressed through the capability interfaces below
type Adapter interface {
	Kind() Kind
}

// RepositoryLooker serves OpRepository
type RepositoryLooker interface {
	Repository(ctx context.Context, req Request) (Result, error)
}

// LatestReleaser serves OpLatestRelease
type LatestReleaser interface {
	LatestRelease(ctx context.Context, req Request) (Result, error)
}

// VersionResolver serves OpVersion
type VersionResolver interface {
	Version(ctx context.Context, req Request) (Result, error)
}

// BranchResolver serves OpBranch
type BranchResolver interface {
	Branch(ctx context.Context, req Request) (Result, error)
}

// Supports reports whether a supports op
func Supports(a Adapter, op Operation) bool {
	_, ok := bind(a, op)
	return ok
}

// bind returns the adapter method serving op, or false when the capability is missing
func bind(a Adapter, op Operation) (func(context.Context, Request) (Result, error), bool) {
	switch op {
	case OpRepository:
		if c, ok := a.(RepositoryLooker); ok {
			return c.Repository, true
		}
	case OpLatestRelease:
		if c, ok := a.(LatestReleaser); ok {
			return c.LatestRelease, true
		}
	case OpVersion:
		if c, ok := a.(VersionResolver); ok {
			return c.Version, true
		}
	case OpBranch:
		if c, ok := a.(BranchResolver); ok {
			return c.Branch, true
		}
	}
	return nil, false
}
