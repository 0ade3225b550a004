package forge

import (
	"context"
	stderrs "errors"
	"testing"

	"forgeapi/internal/platform/testkit"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"github":    KindGitHub,
		"GitLab":    KindGitLab,
		" forgejo ": KindForgejo,
		"codeberg":  KindForgejo,
		"gitea":     KindForgejo,
		"sourcehut": KindSourceHut,
		"srht":      KindSourceHut,
		"FLAKEHUB":  KindFlakeHub,
	}
	for in, want := range cases {
		got, ok := ParseKind(in)
		if !ok || got != want {
			t.Fatalf("ParseKind(%q) = %v %v", in, got, ok)
		}
	}
	if _, ok := ParseKind("bitbucket"); ok {
		t.Fatalf("unexpected kind")
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("codeberg")); err != nil || k != KindForgejo {
		t.Fatalf("unmarshal = %v %v", k, err)
	}
	var uk *UnknownKindError
	if err := k.UnmarshalText([]byte("svn")); !stderrs.As(err, &uk) || uk.Name != "svn" {
		t.Fatalf("err = %v", err)
	}
	b, _ := KindSourceHut.MarshalText()
	if string(b) != "sourcehut" {
		t.Fatalf("marshal = %s", b)
	}
	if KindUnknown.Valid() || KindUnknown.String() != "unknown" {
		t.Fatalf("zero kind should be invalid")
	}
}

func TestFederated(t *testing.T) {
	for _, k := range Kinds {
		want := k == KindForgejo || k == KindSourceHut
		if k.Federated() != want {
			t.Fatalf("%s federated = %v", k, k.Federated())
		}
	}
}

func TestParseOperation(t *testing.T) {
	for _, op := range []Operation{OpRepository, OpLatestRelease, OpVersion, OpBranch} {
		got, ok := ParseOperation(op.String())
		if !ok || got != op {
			t.Fatalf("round trip %s", op)
		}
	}
	if _, ok := ParseOperation("delete"); ok {
		t.Fatalf("unexpected operation")
	}
}

func TestSupports(t *testing.T) {
	a := feedOnly{kind: KindSourceHut}
	if Supports(a, OpRepository) || !Supports(a, OpLatestRelease) {
		t.Fatalf("capability detection wrong")
	}
	if Supports(&fakeAdapter{kind: KindGitHub}, Operation(99)) {
		t.Fatalf("unknown op must be unsupported")
	}
}

func TestRegistry(t *testing.T) {
	if _, err := NewRegistry(&fakeAdapter{kind: KindGitHub}, &fakeAdapter{kind: KindGitHub}); err == nil {
		t.Fatalf("duplicate must fail")
	}
	if _, err := NewRegistry(&fakeAdapter{kind: KindUnknown}); err == nil {
		t.Fatalf("invalid kind must fail")
	}
	testkit.MustPanic(t, func() { MustRegistry(&fakeAdapter{kind: Kind(42)}) })

	r := MustRegistry(&fakeAdapter{kind: KindGitLab}, nil, &fakeAdapter{kind: KindGitHub})
	if got := r.Kinds(); len(got) != 2 || got[0] != KindGitHub || got[1] != KindGitLab {
		t.Fatalf("kinds = %v", got)
	}
	var nilReg *Registry
	if _, ok := nilReg.Adapter(KindGitHub); ok {
		t.Fatalf("nil registry has no adapters")
	}
	if got := nilReg.Kinds(); len(got) != 0 {
		t.Fatalf("nil registry kinds = %v", got)
	}
}

func TestFlagships(t *testing.T) {
	f := NewFlagships(DefaultFlagships)
	for k, want := range DefaultFlagships {
		if got, err := f.Resolve(k); err != nil || got != want {
			t.Fatalf("%s = %q %v", k, got, err)
		}
	}
	if _, err := f.Resolve(KindSourceHut); !stderrs.Is(err, ErrNoFlagshipInstance) {
		t.Fatalf("sourcehut must have no default flagship")
	}

	custom := NewFlagships(map[Kind]string{KindForgejo: "HTTPS://Git.Corp.Test/", KindGitLab: " "})
	if got, _ := custom.Resolve(KindForgejo); got != "git.corp.test" {
		t.Fatalf("normalized = %q", got)
	}
	if _, err := custom.Resolve(KindGitLab); err == nil {
		t.Fatalf("blank entry must be dropped")
	}
	hosts := custom.Hosts()
	hosts[KindGitHub] = "evil.test"
	if _, err := custom.Resolve(KindGitHub); err == nil {
		t.Fatalf("Hosts must return a copy")
	}

	var nilFlags *Flagships
	if got := nilFlags.Hosts(); got == nil || len(got) != 0 {
		t.Fatalf("nil flagships hosts = %v", got)
	}
	if _, err := nilFlags.Resolve(KindGitHub); !stderrs.Is(err, ErrNoFlagshipInstance) {
		t.Fatalf("nil flagships resolve = %v", err)
	}
}

func TestSplitPath(t *testing.T) {
	cases := []struct {
		in          string
		owner, repo string
		ok          bool
	}{
		{"nixos/nixpkgs", "nixos", "nixpkgs", true},
		{"/group/sub/tool.git/", "group/sub", "tool", true},
		{"~sircmpwn/scdoc", "sircmpwn", "scdoc", true},
		{"lonely", "", "", false},
		{"/repo", "", "", false},
	}
	for _, c := range cases {
		o, r, ok := SplitPath(c.in)
		if ok != c.ok || o != c.owner || r != c.repo {
			t.Fatalf("SplitPath(%q) = %q %q %v", c.in, o, r, ok)
		}
	}
}

func TestDiscovery_NilStrategiesAndCancel(t *testing.T) {
	d := NewDiscovery(nil, NewSuffixes(nil))
	if got := d.Strategies(); len(got) != 1 || got[0] != "suffix" {
		t.Fatalf("strategies = %v", got)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, ok := d.Discover(ctx, "github.com"); ok {
		t.Fatalf("cancelled discovery must miss")
	}
	if _, ok := d.Discover(context.Background(), ""); ok {
		t.Fatalf("empty host must miss")
	}
}

func TestKnownHosts(t *testing.T) {
	kh := NewKnownHosts(map[string]Kind{"Git.Corp.Test": KindGitLab, "bad.test": KindUnknown})
	if kh.Len() != 1 {
		t.Fatalf("len = %d", kh.Len())
	}
	if k, ok := kh.Match(context.Background(), "git.corp.test"); !ok || k != KindGitLab {
		t.Fatalf("match = %v %v", k, ok)
	}
}
