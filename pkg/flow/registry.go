package flow

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrReservedKind is returned when a caller registers a discriminator
	// below FirstCustomKind.
	ErrReservedKind = errors.New("flow: failure kinds below 200 are reserved")
	// ErrKindConflict is returned when a discriminator or name is already
	// bound to something else.
	ErrKindConflict = errors.New("flow: failure kind already registered")
)

// UnknownKindError is returned when a discriminator has no registered variant.
type UnknownKindError struct {
	Kind Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("flow: unknown failure kind %d", int(e.Kind))
}

// Registry maps discriminators to variant names. It is the type registry the
// codecs consult when decoding polymorphic failures.
type Registry struct {
	mu     sync.RWMutex
	names  map[Kind]string
	byName map[string]Kind
}

// DefaultRegistry is preloaded with the built-in variants and used by every
// codec in this module.
var DefaultRegistry = NewRegistry()

// NewRegistry returns a registry holding only the built-in variants.
func NewRegistry() *Registry {
	r := &Registry{
		names:  make(map[Kind]string, len(builtInKinds)),
		byName: make(map[string]Kind, len(builtInKinds)),
	}
	for k, name := range builtInKinds {
		r.names[k] = name
		r.byName[strings.ToLower(name)] = k
	}
	return r
}

// Register binds a custom discriminator to a name. Registering the same pair
// twice is a no-op.
func (r *Registry) Register(kind Kind, name string) error {
	if !kind.IsCustom() {
		return fmt.Errorf("%w: %d", ErrReservedKind, int(kind))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("flow: failure kind %d needs a name", int(kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if existing, ok := r.names[kind]; ok {
		if strings.EqualFold(existing, name) {
			return nil
		}
		return fmt.Errorf("%w: %d is %q", ErrKindConflict, int(kind), existing)
	}
	if other, ok := r.byName[key]; ok {
		return fmt.Errorf("%w: %q is %d", ErrKindConflict, name, int(other))
	}

	r.names[kind] = name
	r.byName[key] = kind
	return nil
}

// RegisterKinds registers a batch of custom variants. When the registry
// already knows a kind at or above the highest one requested, the batch is
// assumed to be in place and only verified.
func (r *Registry) RegisterKinds(kinds map[Kind]string) error {
	var highest Kind
	for k := range kinds {
		highest = max(highest, k)
	}

	if r.MaxKind() >= highest && highest >= FirstCustomKind {
		for k, name := range kinds {
			if got, ok := r.Name(k); !ok || !strings.EqualFold(got, name) {
				return r.registerAll(kinds)
			}
		}
		return nil
	}
	return r.registerAll(kinds)
}

func (r *Registry) registerAll(kinds map[Kind]string) error {
	var errs []error
	for k, name := range kinds {
		if err := r.Register(k, name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Name returns the variant name bound to kind.
func (r *Registry) Name(kind Kind) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[kind]
	return name, ok
}

// Lookup resolves a variant name, ignoring case.
func (r *Registry) Lookup(name string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.byName[strings.ToLower(name)]
	return k, ok
}

// MaxKind returns the highest registered discriminator.
func (r *Registry) MaxKind() Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var m Kind
	for k := range r.names {
		m = max(m, k)
	}
	return m
}

// Kinds returns every registered discriminator in ascending order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	kinds := make([]Kind, 0, len(r.names))
	for k := range r.names {
		kinds = append(kinds, k)
	}
	r.mu.RUnlock()
	slices.Sort(kinds)
	return kinds
}

// RegisterKind registers a custom variant with the default registry.
func RegisterKind(kind Kind, name string) error {
	return DefaultRegistry.Register(kind, name)
}
