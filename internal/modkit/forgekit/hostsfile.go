package forgekit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"forgeapi/internal/core/forge"
)

// hostsDoc is the on-disk shape shared by every format
//
//	flagships:
//	  sourcehut: git.sr.ht
//	  forgejo: none
//	hosts:
//	  - host: git.corp.example
//	    kind: gitlab
type hostsDoc struct {
	Flagships map[string]string `yaml:"flagships" toml:"flagships" json:"flagships"`
	Hosts     []hostEntry       `yaml:"hosts" toml:"hosts" json:"hosts"`
}

type hostEntry struct {
	Host string `yaml:"host" toml:"host" json:"host"`
	Kind string `yaml:"kind" toml:"kind" json:"kind"`
}

// HostsFile is a validated hosts file
type HostsFile struct {
	flagships map[forge.Kind]string
	hosts     map[string]forge.Kind
}

// Flagships returns the flagship overrides; an empty value removes a default
func (f *HostsFile) Flagships() map[forge.Kind]string { return f.flagships }

// Hosts returns the known-host table
func (f *HostsFile) Hosts() map[string]forge.Kind { return f.hosts }

// ReadHostsFile loads path, picking the decoder from its extension
func ReadHostsFile(path string) (*HostsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hosts file %s: %w", path, err)
	}
	f, err := ParseHostsFile(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseHostsFile decodes data in the format named by ext (.yaml, .yml, .toml, .json, .jsonc)
func ParseHostsFile(data []byte, ext string) (*HostsFile, error) {
	var doc hostsDoc
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
		if und := md.Undecoded(); len(und) > 0 {
			return nil, fmt.Errorf("parsing toml: unknown keys %v", und)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported hosts file extension %q", ext)
	}
	return doc.validate()
}

func (d hostsDoc) validate() (*HostsFile, error) {
	f := &HostsFile{
		flagships: make(map[forge.Kind]string, len(d.Flagships)),
		hosts:     make(map[string]forge.Kind, len(d.Hosts)),
	}
	for name, host := range d.Flagships {
		k, ok := forge.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("flagships: %w", &forge.UnknownKindError{Name: name})
		}
		if strings.EqualFold(strings.TrimSpace(host), none) {
			host = ""
		}
		f.flagships[k] = forge.NormalizeHost(host)
	}
	for i, e := range d.Hosts {
		h := forge.NormalizeHost(e.Host)
		if h == "" {
			return nil, fmt.Errorf("hosts[%d]: empty host", i)
		}
		k, ok := forge.ParseKind(e.Kind)
		if !ok {
			return nil, fmt.Errorf("hosts[%d] %s: %w", i, h, &forge.UnknownKindError{Name: e.Kind})
		}
		f.hosts[h] = k
	}
	return f, nil
}
