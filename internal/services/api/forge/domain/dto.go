// Package domain holds DTOs for forge http and service contracts
package domain

import (
	"forgeapi/internal/core/forge"
)

// TargetInput is a forge lookup taken from the route
// exactly one of Kind or Host is set by the route; Owner may hold nested groups
type TargetInput struct {
	Kind  string `json:"kind,omitempty"  validate:"omitempty,forge_kind"        example:"github"`
	Host  string `json:"host,omitempty"  validate:"omitempty,forge_host,max=253" example:"codeberg.org"`
	Owner string `json:"owner"           validate:"required,max=255"            example:"NixOS"`
	Repo  string `json:"repo"            validate:"required,max=255"            example:"nixpkgs"`
	Ref   string `json:"ref,omitempty"   validate:"omitempty,max=255"           example:"v1.2.3"`
}

// Target converts the validated input into a dispatcher target
func (in TargetInput) Target() forge.Target {
	k, _ := forge.ParseKind(in.Kind)
	return forge.Target{
		Host:  in.Host,
		Kind:  k,
		Owner: in.Owner,
		Repo:  in.Repo,
		Ref:   in.Ref,
	}
}

// DiscoverInput asks which forge serves a host
type DiscoverInput struct {
	Host string `json:"host" validate:"required,forge_host,max=253" example:"gitlab.gnome.org"`
}

// DiscoverResponse reports the discovered forge
type DiscoverResponse struct {
	Host     string `json:"host"     example:"gitlab.gnome.org"`
	Kind     string `json:"kind"     example:"gitlab"`
	Strategy string `json:"strategy" example:"probe"`
}

// TarballResponse is the resolved archive location
type TarballResponse struct {
	URL string `json:"url" example:"https://codeload.github.com/NixOS/nixpkgs/tar.gz/refs/tags/v1.2.3"`
}
