package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeUpstream, http.StatusInternalServerError},
		{ErrorCodeUnauthorized, http.StatusInternalServerError},
		{ErrorCodeTooManyRequests, http.StatusInternalServerError},
		{ErrorCodeTimeout, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCode(999), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeTooManyRequests.String() != "too_many_requests" {
		t.Fatalf("name = %q", ErrorCodeTooManyRequests.String())
	}
	if ErrorCode(999).String() != "code(999)" {
		t.Fatalf("unknown name = %q", ErrorCode(999).String())
	}
}

func TestWrapKeepsCauseOffTheWire(t *testing.T) {
	cause := stderrs.New("dial tcp: connection refused")
	err := Wrapf(cause, ErrorCodeUpstream, "fetching %s", "codeberg.org")

	if err.Error() != "fetching codeberg.org: dial tcp: connection refused" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !stderrs.Is(err, cause) || Root(err) != cause {
		t.Fatalf("cause not reachable")
	}
	w := WireFrom(fmt.Errorf("outer: %w", err))
	if w.Code != ErrorCodeUpstream || w.Message != "fetching codeberg.org" || w.Field != "" {
		t.Fatalf("wire = %+v", w)
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := New(ErrorCodeValidation, "bad host")
	withField := WithField(base, "host")

	if e, _ := As(withField); e.Field() != "host" {
		t.Fatalf("field = %q", e.Field())
	}
	if e, _ := As(base); e.Field() != "" {
		t.Fatalf("base mutated: %q", e.Field())
	}
	plain := stderrs.New("x")
	if WithField(plain, "host") != plain {
		t.Fatalf("foreign errors pass through")
	}
}

func TestCodeOfAndWireFrom(t *testing.T) {
	if CodeOf(nil) != ErrorCodeUnknown || CodeOf(stderrs.New("x")) != ErrorCodeUnknown {
		t.Fatalf("foreign errors are unknown")
	}
	if CodeOf(Upstreamf("gitlab said %d", 502)) != ErrorCodeUpstream {
		t.Fatalf("upstream code lost")
	}
	if CodeOf(PanicErrf("boom")) != ErrorCodePanic {
		t.Fatalf("panic code lost")
	}
	if (WireFrom(nil) != Wire{}) {
		t.Fatalf("nil should give zero wire")
	}
	if w := WireFrom(stderrs.New("plain")); w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("plain wire = %+v", w)
	}
	if HTTPStatus(New(ErrorCodeNotFound, "no such forge")) != http.StatusNotFound {
		t.Fatalf("not found status")
	}
}

func TestNilError(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil receiver = %q", e.Error())
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) should be nil")
	}
}
