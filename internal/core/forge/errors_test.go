package forge

import (
	"bytes"
	stderrs "errors"
	"net/http"
	"strings"
	"testing"

	perr "forgeapi/internal/platform/errors"

	"github.com/rs/zerolog"
)

func TestHTTP(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{ErrEndpointUnavailable, http.StatusNotFound, "endpoint not available for this forge"},
		{ErrNoFlagshipInstance, http.StatusNotFound, "flagship instance unavailable for this forge"},
		{NewRequestError(stderrs.New("dial tcp: timeout")), http.StatusInternalServerError, "error communicating with the remote server"},
		{stderrs.New("untyped"), http.StatusInternalServerError, "error communicating with the remote server"},
	}
	for _, c := range cases {
		status, msg := HTTP(c.err)
		if status != c.status || msg != c.msg {
			t.Fatalf("HTTP(%v) = %d %q, want %d %q", c.err, status, msg, c.status, c.msg)
		}
	}
}

func TestWire_HidesCause(t *testing.T) {
	err := NewRequestError(stderrs.New("dial tcp 10.0.0.1:443: secret detail"))
	w := perr.WireFrom(Wire(err))
	if w.Message != "error communicating with the remote server" {
		t.Fatalf("message = %q", w.Message)
	}
	if strings.Contains(w.Message, "secret") {
		t.Fatalf("cause leaked")
	}
	if perr.HTTPStatus(Wire(err)) != http.StatusInternalServerError {
		t.Fatalf("status = %d", perr.HTTPStatus(Wire(err)))
	}
	if perr.HTTPStatus(Wire(ErrNoFlagshipInstance)) != http.StatusNotFound {
		t.Fatalf("flagship should be 404")
	}
	if Wire(nil) != nil {
		t.Fatalf("nil in, nil out")
	}
}

func TestErrorIs(t *testing.T) {
	err := NewRequestError(stderrs.New("boom"))
	if !stderrs.Is(err, ErrRequest) {
		t.Fatalf("request error should match sentinel")
	}
	if stderrs.Is(err, ErrEndpointUnavailable) {
		t.Fatalf("kinds must not cross-match")
	}
	if KindOf(nil) != 0 || KindOf(stderrs.New("x")) != RequestError {
		t.Fatalf("KindOf defaults wrong")
	}
}

func TestNormalize(t *testing.T) {
	if normalize(nil) != nil {
		t.Fatalf("nil in, nil out")
	}
	if got := normalize(ErrEndpointUnavailable); got != ErrEndpointUnavailable {
		t.Fatalf("typed errors pass through")
	}
	if KindOf(normalize(stderrs.New("x"))) != RequestError {
		t.Fatalf("untyped becomes RequestError")
	}
}

func TestLog_Policy(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.InfoLevel)

	Log(&l, ErrEndpointUnavailable)
	if buf.Len() != 0 {
		t.Fatalf("endpoint unavailable must not log above debug: %s", buf.String())
	}
	Log(&l, ErrNoFlagshipInstance)
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("flagship miss should log at error: %s", buf.String())
	}
	Log(nil, ErrRequest)
}
