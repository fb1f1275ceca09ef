package viewer

import (
	"sync"
	"time"
)

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Viewer
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*Viewer)}
}

func (s *sessionStore) get(clientID string) (*Viewer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	viewer, ok := s.sessions[clientID]
	return viewer, ok
}

// putIfAbsent stores viewer unless another request created the session
// first, in which case the existing one wins.
func (s *sessionStore) putIfAbsent(clientID string, viewer *Viewer) (*Viewer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[clientID]; ok {
		return existing, false
	}
	s.sessions[clientID] = viewer
	return viewer, true
}

func (s *sessionStore) all() []*Viewer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	viewers := make([]*Viewer, 0, len(s.sessions))
	for _, viewer := range s.sessions {
		viewers = append(viewers, viewer)
	}
	return viewers
}

func (s *sessionStore) evictIdle(cutoff time.Time) []*Viewer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var evicted []*Viewer
	for clientID, viewer := range s.sessions {
		if viewer.idleSince(cutoff) {
			delete(s.sessions, clientID)
			evicted = append(evicted, viewer)
		}
	}
	return evicted
}

func (s *sessionStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
