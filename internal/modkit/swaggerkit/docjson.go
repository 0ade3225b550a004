package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	docs "forgeapi/internal/services/api/docs"
)

// SpecMutator adjusts the parsed OpenAPI document before it is served
type SpecMutator func(map[string]any)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

func serveDocJSON(mutators []SpecMutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		ensureErrorResponseDefinition(spec)
		for status, example := range defaultErrors {
			addDefaultResponse(spec, status, example)
		}
		for _, m := range mutators {
			if m != nil {
				m(spec)
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// TitleSuffix appends s to info.title, e.g. to tell staging docs apart
func TitleSuffix(s string) SpecMutator {
	return func(spec map[string]any) {
		if s == "" {
			return
		}
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + s
			}
		}
	}
}

// KindEnum narrows every kind path parameter to the forges actually registered
func KindEnum(kinds []string) SpecMutator {
	return func(spec map[string]any) {
		enum := make([]any, 0, len(kinds))
		for _, k := range kinds {
			enum = append(enum, k)
		}
		eachOperation(spec, func(op map[string]any) {
			params, _ := op["parameters"].([]any)
			for _, p := range params {
				param, ok := p.(map[string]any)
				if !ok || param["name"] != "kind" || param["in"] != "path" {
					continue
				}
				if schema, ok := param["schema"].(map[string]any); ok {
					schema["enum"] = enum
				}
			}
		})
	}
}

// ensureServers lifts the doc to OAS 3.0.3 and sets a server url
// the swagger ui bundled here cannot render 3.1
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope schema if missing
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := map[string]any{"type": "string"}
	i32 := map[string]any{"type": "integer", "format": "int32"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": i32,
			"status":      str,
			"code":        i32,
			"error":       str,
			"request_id":  str,
		},
		"required": []any{"status_code", "status"},
	}
}

// defaultErrors are injected where an operation documents nothing for the status
var defaultErrors = map[string]map[string]any{
	"400": {"status_code": 400, "status": "Bad Request", "code": 7, "error": "kind must be a known forge kind"},
	"500": {"status_code": 500, "status": "Internal Server Error", "code": 1, "error": "panic recovered"},
}

func addDefaultResponse(spec map[string]any, status string, example map[string]any) {
	resp := map[string]any{
		"description": example["status"],
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	eachOperation(spec, func(op map[string]any) {
		resps, ok := op["responses"].(map[string]any)
		if !ok {
			resps = map[string]any{}
			op["responses"] = resps
		}
		if _, ok := resps[status]; !ok {
			resps[status] = resp
		}
	})
}

func eachOperation(spec map[string]any, fn func(op map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			if op, ok := opAny.(map[string]any); ok {
				fn(op)
			}
		}
	}
}
