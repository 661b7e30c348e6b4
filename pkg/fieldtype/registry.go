package fieldtype

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores field types by name.
type Registry struct {
	mu    sync.RWMutex
	types map[string]FieldType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]FieldType),
	}
}

// Register adds a field type by its Name(). Duplicate names return an error.
func (r *Registry) Register(fieldType FieldType) error {
	if fieldType == nil {
		return fmt.Errorf("fieldtype: field type is required")
	}
	name := normalizeName(fieldType.Name())
	if name == "" {
		return fmt.Errorf("fieldtype: field type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return fmt.Errorf("fieldtype: field type %q already registered", name)
	}
	r.types[name] = fieldType
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(fieldType FieldType) {
	if err := r.Register(fieldType); err != nil {
		panic(err)
	}
}

// Get retrieves a field type by name.
func (r *Registry) Get(name string) (FieldType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fieldType, ok := r.types[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("fieldtype: field type %q not found", strings.TrimSpace(name))
	}
	return fieldType, nil
}

// Has reports whether a field type is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[normalizeName(name)]
	return ok
}

// List returns the registered names sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
