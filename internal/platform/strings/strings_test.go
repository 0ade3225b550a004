package strings

import (
	"testing"

	kit "forgeapi/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"GET", "HEAD"}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("nil input = %v", got)
	}
	if got := IfEmpty([]string{}, def); len(got) != 2 {
		t.Fatalf("empty input = %v", got)
	}
	if got := IfEmpty([]string{"OPTIONS"}, def); len(got) != 1 || got[0] != "OPTIONS" {
		t.Fatalf("non empty input = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(" forge\n", "module name"); got != "forge" {
		t.Fatalf("got %q", got)
	}
	kit.MustPanic(t, func() { MustString(" \t", "module name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"forge":     "/forge",
		"/forge/":   "/forge",
		" //meta ":  "/meta",
		"/api/v1/x": "/api/v1/x",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
	kit.MustPanic(t, func() { MustPrefix("") })
	kit.MustPanic(t, func() { MustPrefix("/forge/{kind}") })
	kit.MustPanic(t, func() { MustPrefix("/forge/*") })
}
