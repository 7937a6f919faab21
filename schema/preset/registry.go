package preset

import (
	"fmt"
	"sort"
	"sync"

	"github.com/syssam/heragen"
)

// Registry is a read-only set of presets indexed by key.
// It is safe for concurrent use.
type Registry struct {
	byKey map[EntityType]EntityPreset
	keys  []string
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry holding the built-in catalog.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New()
		if err != nil {
			panic(fmt.Sprintf("preset: built-in catalog: %v", err))
		}
		defaultReg = r
	})
	return defaultReg
}

// New returns a registry holding the built-in catalog plus extra.
// Redefining a key is an error.
func New(extra ...EntityPreset) (*Registry, error) {
	r := &Registry{byKey: make(map[EntityType]EntityPreset, len(catalog)+len(extra))}
	codes := make(map[string]EntityType, len(catalog)+len(extra))
	for _, list := range [][]EntityPreset{catalog, extra} {
		for _, p := range list {
			p.Key = Normalize(string(p.Key))
			if p.Key == "" {
				return nil, fmt.Errorf("preset: empty key (smart code %q)", p.SmartCode)
			}
			if _, ok := r.byKey[p.Key]; ok {
				return nil, fmt.Errorf("preset: duplicate key %s", p.Key)
			}
			if owner, ok := codes[p.SmartCode]; ok {
				return nil, fmt.Errorf("preset: %s reuses smart code %s of %s", p.Key, p.SmartCode, owner)
			}
			codes[p.SmartCode] = p.Key
			r.byKey[p.Key] = p.Clone()
			r.keys = append(r.keys, string(p.Key))
		}
	}
	sort.Strings(r.keys)
	return r, nil
}

// Lookup returns the preset registered under key. Keys are matched
// case-insensitively after trimming.
func (r *Registry) Lookup(key string) (EntityPreset, error) {
	p, ok := r.byKey[Normalize(key)]
	if !ok {
		return EntityPreset{}, heragen.NewEntityTypeNotFoundError(string(Normalize(key)), r.keys)
	}
	return p.Clone(), nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[Normalize(key)]
	return ok
}

// Keys returns the sorted registered keys.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// All returns copies of every preset sorted by key.
func (r *Registry) All() []EntityPreset {
	all := make([]EntityPreset, 0, len(r.keys))
	for _, k := range r.keys {
		all = append(all, r.byKey[EntityType(k)].Clone())
	}
	return all
}

// Len returns the number of registered presets.
func (r *Registry) Len() int { return len(r.keys) }

// ByModule groups the presets by module, each group sorted by key.
func (r *Registry) ByModule() map[Module][]EntityPreset {
	groups := make(map[Module][]EntityPreset)
	for _, p := range r.All() {
		groups[p.Module] = append(groups[p.Module], p)
	}
	return groups
}
