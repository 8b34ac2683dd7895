package meta

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// Registry maps literal request paths to metadata records. Populate it during
// startup, then treat it as read-only; lookups need no locking after that.
type Registry struct {
	entries map[string]Record
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]Record{}}
}

// Register binds a record to a static path. Paths carrying router parameter
// syntax ({, } or *) are rejected: the registry never matches dynamically.
// Registering the same path twice is rejected rather than overwritten, since
// a duplicate is almost always a configuration mistake.
func (reg *Registry) Register(path string, rec Record) error {
	if path == "" {
		return fmt.Errorf("meta: empty path")
	}
	if strings.ContainsAny(path, "{}*") {
		return fmt.Errorf("meta: path %q contains parameter syntax; only static paths can carry metadata", path)
	}
	if _, dup := reg.entries[path]; dup {
		return fmt.Errorf("meta: duplicate registration for path %q", path)
	}
	reg.entries[path] = rec
	return nil
}

// Lookup returns the record registered for path. The match is byte-exact:
// no trailing-slash, case or query normalization.
func (reg *Registry) Lookup(path string) (Record, bool) {
	rec, ok := reg.entries[path]
	return rec, ok
}

// RenderFor renders the head tags for path. ok is false when the path has no
// registration, so the caller can omit the whole block; a registered record
// with no fields renders to an empty (but present) result.
func (reg *Registry) RenderFor(path string, indent int) (template.HTML, bool) {
	rec, ok := reg.Lookup(path)
	if !ok {
		return "", false
	}
	return template.HTML(Render(rec, indent)), true
}

// Paths returns all registered paths in ascending order.
func (reg *Registry) Paths() []string {
	paths := make([]string, 0, len(reg.entries))
	for p := range reg.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of registered paths.
func (reg *Registry) Len() int { return len(reg.entries) }
