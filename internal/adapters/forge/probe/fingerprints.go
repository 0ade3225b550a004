package probe

import (
	"net/http"

	"forgeapi/internal/core/forge"
)

type fingerprint struct {
	name  string
	kind  forge.Kind
	path  string
	match func(answer) bool
}

// fingerprints in priority order; Forgejo must come before the Gitea check it also passes
var fingerprints = []fingerprint{
	{
		name: "forgejo",
		kind: forge.KindForgejo,
		path: "/api/forgejo/v1/version",
		match: func(a answer) bool {
			return a.status == http.StatusOK && a.hasString("version")
		},
	},
	{
		name: "gitea",
		kind: forge.KindForgejo,
		path: "/api/v1/version",
		match: func(a answer) bool {
			return a.status == http.StatusOK && a.hasString("version")
		},
	},
	{
		name: "gitlab",
		kind: forge.KindGitLab,
		path: "/api/v4/version",
		match: func(a answer) bool {
			if a.header.Get("X-Gitlab-Meta") != "" {
				return a.status == http.StatusOK || a.status == http.StatusUnauthorized
			}
			return a.status == http.StatusOK && a.hasString("version", "revision")
		},
	},
	{
		name: "github-enterprise",
		kind: forge.KindGitHub,
		path: "/api/v3/meta",
		match: func(a answer) bool {
			if a.header.Get("X-GitHub-Request-Id") != "" {
				return true
			}
			if a.status != http.StatusOK {
				return false
			}
			_, ok := a.fields()["verifiable_password_authentication"]
			return ok
		},
	},
}
