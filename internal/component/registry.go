package component

import (
	"fmt"
	"sync"
)

// Registry maps instance ids to live instances. It is owned by the
// orchestrator that constructs components; lookups by id replace any
// ambient process registry.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Instance
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]*Instance)}
}

// Add registers an instance under its id.
func (r *Registry) Add(inst *Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[inst.ID()] = inst
}

// Get looks up an instance by id.
func (r *Registry) Get(id string) (*Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[id]
	if !ok {
		return nil, fmt.Errorf("no component instance %q", id)
	}
	return inst, nil
}

// Remove closes and forgets an instance. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	inst, ok := r.instances[id]
	delete(r.instances, id)
	r.mu.Unlock()
	if ok {
		inst.Close()
	}
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// CloseAll closes every instance and empties the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	instances := r.instances
	r.instances = make(map[string]*Instance)
	r.mu.Unlock()
	for _, inst := range instances {
		inst.Close()
	}
}
