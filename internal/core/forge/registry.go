package forge

import "fmt"

// Registry maps each kind to its adapter. Build it once at startup; it is read-only afterwards
type Registry struct {
	adapters map[Kind]Adapter
}

// NewRegistry builds a registry from adapters, rejecting duplicates and unknown kinds
func NewRegistry(adapters ...Adapter) (*Registry, error) {
	r := &Registry{adapters: make(map[Kind]Adapter, len(adapters))}
	for _, a := range adapters {
		if a == nil {
			continue
		}
		k := a.Kind()
		if !k.Valid() {
			return nil, fmt.Errorf("forge registry: adapter reports invalid kind %d", k)
		}
		if _, dup := r.adapters[k]; dup {
			return nil, fmt.Errorf("forge registry: duplicate adapter for %s", k)
		}
		r.adapters[k] = a
	}
	return r, nil
}

// MustRegistry is NewRegistry that panics, for main wiring
func MustRegistry(adapters ...Adapter) *Registry {
	r, err := NewRegistry(adapters...)
	if err != nil {
		panic(err)
	}
	return r
}

// Adapter returns the adapter for k
func (r *Registry) Adapter(k Kind) (Adapter, bool) {
	if r == nil {
		return nil, false
	}
	a, ok := r.adapters[k]
	return a, ok
}

// Kinds returns the registered kinds in stable order
func (r *Registry) Kinds() []Kind {
	if r == nil {
		return nil
	}
	out := make([]Kind, 0, len(Kinds))
	for _, k := range Kinds {
		if _, ok := r.adapters[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
