package http

import (
	"encoding/json"
	"io"
	stdhttp "net/http"

	perr "forgeapi/internal/platform/errors"
	pnet "forgeapi/internal/platform/net"
)

// Envelope is the standard JSON body for every endpoint
type Envelope = pnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	// optional headers if a handler wants to add any
	Header stdhttp.Header
}

// Text is a plain text body written without the envelope
type Text string

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent || (status >= 300 && status < 400) {
		w.WriteHeader(status)
		return
	}
	if t, ok := resp.Body.(Text); ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, string(t))
		return
	}

	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		status, env := pnet.Error(err, reqID)
		JSON(w, status, env)
		return
	}
	status, env := pnet.Reply(status, resp.Body, reqID)
	JSON(w, status, env)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Status: perr.HTTPStatus(err), Body: err} }

// PlainText returns a text/plain response with the given status
func PlainText(status int, msg string) Response { return Response{Status: status, Body: Text(msg)} }

// Redirect returns a 307 to location
func Redirect(location string) Response {
	return Response{
		Status: stdhttp.StatusTemporaryRedirect,
		Header: stdhttp.Header{"Location": []string{location}},
	}
}
