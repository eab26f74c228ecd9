package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps one Session per visitor id and forgets sessions idle for
// longer than the ttl.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	open     func() *Session
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry creates a registry that opens new sessions with open.
func NewRegistry(ttl time.Duration, open func() *Session) *Registry {
	return &Registry{
		sessions: make(map[string]*registryEntry),
		open:     open,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Session returns the session for id, opening a fresh one under a new id when
// id is unknown or expired. The returned id is the one to hand back to the
// visitor.
func (r *Registry) Session(id string) (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.sessions[id]; ok && now.Sub(e.lastSeen) <= r.ttl {
		e.lastSeen = now
		return id, e.session
	}
	delete(r.sessions, id)

	id = uuid.NewString()
	s := r.open()
	r.sessions[id] = &registryEntry{session: s, lastSeen: now}
	return id, s
}

// Sweep drops expired sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
