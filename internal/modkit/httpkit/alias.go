// Package httpkit re-exports the platform http helpers modules mount with
// modules import this rather than internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "forgeapi/internal/platform/net/http"
)

type (
	// Envelope is the JSON body every endpoint answers with
	Envelope = phttp.Envelope

	// Response is a return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error maps err to its status and error envelope
func Error(err error) Response { return phttp.Error(err) }

// Param returns the decoded path parameter key
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// PlainText returns a text/plain response
func PlainText(status int, msg string) Response { return phttp.PlainText(status, msg) }

// Redirect returns a 307 to location
func Redirect(location string) Response { return phttp.Redirect(location) }

// Call adapts a lookup style handler; a returned Response is written as is
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(phttp.Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
