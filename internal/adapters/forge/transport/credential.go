package transport

import "strings"

// Credential is a static token bound to the hosts allowed to receive it
// the zero value sends nothing anywhere
type Credential struct {
	token string
	hosts map[string]struct{}
}

// NewCredential binds token to hosts; an empty token or host list yields no credential
func NewCredential(token string, hosts ...string) Credential {
	c := Credential{token: token, hosts: make(map[string]struct{}, len(hosts))}
	for _, h := range hosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			c.hosts[h] = struct{}{}
		}
	}
	return c
}

// For returns the token when host is bound to it and "" otherwise
func (c Credential) For(host string) string {
	if c.token == "" {
		return ""
	}
	if _, ok := c.hosts[strings.ToLower(host)]; !ok {
		return ""
	}
	return c.token
}

// Hosts reports how many hosts the token is bound to
func (c Credential) Hosts() int { return len(c.hosts) }
