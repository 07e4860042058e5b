package factory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ModuleConfig names a pluggable module implementation and carries its raw
// settings from the configuration file.
type ModuleConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Factory builds one implementation of T from its raw settings.
type Factory[T any] func(conf map[string]any) (T, error)

// Registry maps module type names to factories. Registration happens in
// package init functions, creation once at startup from the loaded
// configuration.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{factories: map[string]Factory[T]{}}
}

// Register adds a factory under name. Registering a name twice is an error
// so a duplicated init is caught immediately.
func (r *Registry[T]) Register(name string, f Factory[T]) error {
	if f == nil {
		return fmt.Errorf("nil factory for module type %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[name]; dup {
		return fmt.Errorf("module type %q registered twice", name)
	}
	r.factories[name] = f
	return nil
}

// Create builds the module described by cfg. Unknown types report the
// registered alternatives so configuration typos are easy to spot.
func (r *Registry[T]) Create(cfg ModuleConfig) (T, error) {
	r.mu.RLock()
	f, ok := r.factories[cfg.Type]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown module type %q (registered: %s)",
			cfg.Type, strings.Join(r.names(), ", "))
	}
	return f(cfg.Conf)
}

func (r *Registry[T]) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode fills a settings struct from raw module settings using json tags,
// the same tags the config loader uses for the rest of the file.
func Decode(conf map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(conf)
}
