package capture

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the in-memory map of named sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}}
}

// Add registers a session under its name. Duplicate names are rejected.
func (r *Registry) Add(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.Name]; exists {
		return fmt.Errorf("session %q already exists", s.Name)
	}
	r.sessions[s.Name] = s
	return nil
}

// Get returns the named session, or nil.
func (r *Registry) Get(name string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[name]
}

// Remove drops and closes the named session. It reports whether the name
// existed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	s := r.sessions[name]
	delete(r.sessions, name)
	r.mu.Unlock()
	if s == nil {
		return false
	}
	_ = s.Close()
	return true
}

// List returns all sessions sorted by name.
func (r *Registry) List() []*Session {
	r.mu.RLock()
	list := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		list = append(list, s)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
