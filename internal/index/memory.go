package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// Session is the per-editor state kept between requests.
type Session struct {
	Drag     domain.DragSession
	LastSeen time.Time
}

// MemoryIndex holds the current profile and the editor sessions.
// It is the source of truth while the process runs; the store only
// persists what it holds.
type MemoryIndex struct {
	mu       sync.RWMutex
	profile  domain.Profile
	sessions map[string]*Session // session ID -> Session
	lastSync time.Time           // Timestamp of last profile replacement
	now      func() time.Time
}

// NewMemoryIndex creates a new memory index holding the default profile
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		profile:  domain.DefaultProfile(),
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// SetProfile replaces the current profile
func (idx *MemoryIndex) SetProfile(p domain.Profile) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.profile = p.Clone()
	idx.lastSync = idx.now()
}

// Profile returns a copy of the current profile
func (idx *MemoryIndex) Profile() domain.Profile {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.profile.Clone()
}

// LinkCount returns the number of links in the current profile
func (idx *MemoryIndex) LinkCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.profile.Links)
}

// GetLastSync returns the timestamp of the last profile replacement
func (idx *MemoryIndex) GetLastSync() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastSync
}

// ─────────────────────────────────────────────────────────────────
// Session methods
// ─────────────────────────────────────────────────────────────────

// Drag returns the drag session of an editor session and marks it as seen.
// Unknown sessions get an inactive drag session.
func (idx *MemoryIndex) Drag(sessionID string) domain.DragSession {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	s, ok := idx.sessions[sessionID]
	if !ok {
		return domain.DragSession{}
	}
	s.LastSeen = idx.now()
	return s.Drag
}

// SetDrag stores the drag session of an editor session
func (idx *MemoryIndex) SetDrag(sessionID string, drag domain.DragSession) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	s, ok := idx.sessions[sessionID]
	if !ok {
		s = &Session{}
		idx.sessions[sessionID] = s
	}
	s.Drag = drag
	s.LastSeen = idx.now()
}

// GetAllSessions returns a snapshot of all sessions
func (idx *MemoryIndex) GetAllSessions() map[string]Session {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	sessions := make(map[string]Session, len(idx.sessions))
	for id, s := range idx.sessions {
		sessions[id] = *s
	}
	return sessions
}

// DeleteSessionIfIdle removes a session not seen since before cutoff and
// reports whether it did.
func (idx *MemoryIndex) DeleteSessionIfIdle(sessionID string, cutoff time.Time) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	s, ok := idx.sessions[sessionID]
	if !ok || !s.LastSeen.Before(cutoff) {
		return false
	}
	delete(idx.sessions, sessionID)
	return true
}

// SessionCount returns the number of sessions in the index
func (idx *MemoryIndex) SessionCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.sessions)
}

// ActiveDragCount returns the number of sessions with a drag in progress
func (idx *MemoryIndex) ActiveDragCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := 0
	for _, s := range idx.sessions {
		if s.Drag.Active() {
			n++
		}
	}
	return n
}
