// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"forgeapi/internal/core/forge"
	"forgeapi/internal/core/version"
	"forgeapi/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Forge       *forge.Dispatcher
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/forges", h.forges)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"forgeapi"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"forge"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"no adapters registered"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"forgeapi"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// ForgeInfo describes one registered backend
type ForgeInfo struct {
	Kind       string   `json:"kind"                 example:"github"`
	Flagship   string   `json:"flagship,omitempty"   example:"github.com"`
	Federated  bool     `json:"federated"            example:"false"`
	Operations []string `json:"operations"           example:"repository,latest-release"`
}

// ForgesResponse lists backends and the discovery order
type ForgesResponse struct {
	Forges     []ForgeInfo `json:"forges"`
	Strategies []string    `json:"strategies" example:"known-hosts,suffix,probe"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe; the service is ready once the dispatcher has adapters
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	check := ReadyCheck{Name: "forge", Status: "ok"}
	switch {
	case h.deps.Forge == nil:
		check.Status = "skipped"
	case len(h.deps.Forge.Registry().Kinds()) == 0:
		check.Status = "fail"
		check.Error = "no adapters registered"
	}

	overall := "ok"
	if check.Status == "fail" {
		overall = "fail"
	}
	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{check},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/forges Meta metaForges
// @Summary Registered forges, their capabilities and flagship hosts
// @Tags Meta
// @Produce json
// @Success 200 type ForgesResponse ok
// @Router /meta/forges [get]
func (h *handlers) forges(_ *http.Request) (any, error) {
	out := ForgesResponse{Forges: []ForgeInfo{}, Strategies: []string{}}
	d := h.deps.Forge
	if d == nil {
		return out, nil
	}
	flags := d.Flagships().Hosts()
	for _, k := range d.Registry().Kinds() {
		a, _ := d.Registry().Adapter(k)
		fi := ForgeInfo{Kind: k.String(), Flagship: flags[k], Federated: k.Federated(), Operations: []string{}}
		for _, op := range forge.Operations {
			if forge.Supports(a, op) {
				fi.Operations = append(fi.Operations, op.String())
			}
		}
		out.Forges = append(out.Forges, fi)
	}
	out.Strategies = d.Strategies()
	return out, nil
}
