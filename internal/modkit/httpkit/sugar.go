package httpkit

import "net/http"

// Get mounts fn under GET and HEAD; HEAD answers with headers only
func Get(r Router, path string, fn func(*http.Request) (any, error)) {
	h := Call(fn)
	r.Get(path, h)
	r.Head(path, headOnly(h))
}

func headOnly(h Handler) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		h(bodyless{w}, r)
	}
}

// bodyless drops writes so HEAD reuses the GET handler
type bodyless struct{ http.ResponseWriter }

func (b bodyless) Write(p []byte) (int, error) { return len(p), nil }
