package command

import (
	"fmt"
	"sync"

	"github.com/canonical/lxd-driver/shared/resource"
)

// Registry maps (kind, action) pairs to entries. Entries can be added but never replaced or removed.
type Registry struct {
	mu      sync.RWMutex
	entries map[Key]Entry
	order   []Key
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[Key]Entry{}}
}

// Register adds an entry. Entries without a binary run lxc.
func (r *Registry) Register(entry Entry) error {
	err := entry.Kind.Validate()
	if err != nil {
		return err
	}

	err = entry.Action.Validate()
	if err != nil {
		return err
	}

	if entry.Binary == "" {
		entry.Binary = BinaryLXC
	}

	err = validateEntry(entry)
	if err != nil {
		return fmt.Errorf("Invalid entry %q: %w", entry.Key(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[entry.Key()]
	if ok {
		return fmt.Errorf("Entry %q is already registered", entry.Key())
	}

	r.entries[entry.Key()] = entry.clone()
	r.order = append(r.order, entry.Key())

	return nil
}

// MustRegister adds entries and panics on failure. It is meant for static tables.
func (r *Registry) MustRegister(entries ...Entry) {
	for _, entry := range entries {
		err := r.Register(entry)
		if err != nil {
			panic(err)
		}
	}
}

// Lookup returns the entry for a (kind, action) pair.
func (r *Registry) Lookup(kind resource.Kind, action resource.Action) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[Key{Kind: kind, Action: action}]
	if !ok {
		return Entry{}, false
	}

	return entry.clone(), true
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.order))
	for _, key := range r.order {
		entries = append(entries, r.entries[key].clone())
	}

	return entries
}

// Actions returns the actions registered for kind, in registration order.
func (r *Registry) Actions(kind resource.Kind) []resource.Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var actions []resource.Action
	for _, key := range r.order {
		if key.Kind == kind {
			actions = append(actions, key.Action)
		}
	}

	return actions
}

// validateEntry checks the parameter declarations of an entry against its shape.
func validateEntry(entry Entry) error {
	if len(entry.Command) == 0 {
		return fmt.Errorf("Missing command")
	}

	seen := map[string]ParamSpec{}
	for _, p := range entry.Params {
		if p.Name == "" {
			return fmt.Errorf("Parameter without a name")
		}

		_, ok := seen[p.Name]
		if ok {
			return fmt.Errorf("Duplicate parameter %q", p.Name)
		}

		if p.Type == ParamSwitch && !p.IsFlag() {
			return fmt.Errorf("Switch parameter %q must be a flag", p.Name)
		}

		if p.Default != "" && !p.Optional {
			return fmt.Errorf("Parameter %q has a default but isn't optional", p.Name)
		}

		if p.InheritFrom != "" {
			parent, ok := seen[p.InheritFrom]
			if !ok || !parent.Type.IsAddress() {
				return fmt.Errorf("Parameter %q inherits from unknown address parameter %q", p.Name, p.InheritFrom)
			}

			if !p.Type.IsAddress() {
				return fmt.Errorf("Parameter %q inherits a scope but isn't an address", p.Name)
			}
		}

		seen[p.Name] = p
	}

	if entry.Shape != inferShape(entry.Params) {
		return fmt.Errorf("Declared shape %q doesn't match parameters (%q)", entry.Shape, inferShape(entry.Params))
	}

	return nil
}
