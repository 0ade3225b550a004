package transport

import "testing"

func TestCredential_For(t *testing.T) {
	c := NewCredential("secret", "github.com", " GHE.Corp.Example ")
	cases := []struct {
		host string
		want string
	}{
		{"github.com", "secret"},
		{"ghe.corp.example", "secret"},
		{"GHE.corp.example", "secret"},
		{"attacker.example", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := c.For(tc.host); got != tc.want {
			t.Fatalf("For(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
	if c.Hosts() != 2 {
		t.Fatalf("Hosts() = %d, want 2", c.Hosts())
	}
}

func TestCredential_ZeroAndUnbound(t *testing.T) {
	var zero Credential
	if zero.For("github.com") != "" {
		t.Fatal("zero credential must send nothing")
	}
	if NewCredential("secret").For("github.com") != "" {
		t.Fatal("token without hosts must send nothing")
	}
	if NewCredential("", "github.com").For("github.com") != "" {
		t.Fatal("empty token must send nothing")
	}
}
