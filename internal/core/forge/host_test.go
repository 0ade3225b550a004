package forge

import (
	"context"
	"testing"
)

func TestNormalizeHost(t *testing.T) {
	cases := map[string]string{
		"github.com":                        "github.com",
		"  GitHub.COM  ":                    "github.com",
		"https://gitlab.com/foo/bar":        "gitlab.com",
		"git@codeberg.org":                  "codeberg.org",
		"git.example.org:8443":              "git.example.org",
		"git.example.org.":                  "git.example.org",
		"http://user:pw@host.test:80/x?y=1": "host.test",
		"bücher.example":                    "xn--bcher-kva.example",
		"":                                  "",
		"https://":                          "",
	}
	for in, want := range cases {
		if got := NormalizeHost(in); got != want {
			t.Fatalf("NormalizeHost(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuffixes(t *testing.T) {
	s := NewSuffixes(nil)
	cases := []struct {
		host string
		want Kind
		ok   bool
	}{
		{"github.com", KindGitHub, true},
		{"gist.github.com", KindGitHub, true},
		{"notgithub.com", KindUnknown, false},
		{"gitlab.com", KindGitLab, true},
		{"git.sr.ht", KindSourceHut, true},
		{"flakehub.com", KindFlakeHub, true},
		{"codeberg.org", KindUnknown, false},
	}
	for _, c := range cases {
		k, ok := s.Match(context.Background(), c.host)
		if ok != c.ok || k != c.want {
			t.Fatalf("Match(%q) = %v %v", c.host, k, ok)
		}
	}
}
