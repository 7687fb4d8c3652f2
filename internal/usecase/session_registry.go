package usecase

import "sync"

// SessionRegistry tracks at most one live chat session per signed-in viewer.
// The WebSocket layer creates sessions; REST handlers look them up so an
// attachment upload lands in the viewer's open conversation.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*ChatSession
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*ChatSession),
	}
}

// Put installs the viewer's session, closing any session it replaces.
func (r *SessionRegistry) Put(viewerID string, session *ChatSession) {
	r.mu.Lock()
	prev := r.sessions[viewerID]
	r.sessions[viewerID] = session
	r.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
}

func (r *SessionRegistry) Get(viewerID string) (*ChatSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[viewerID]
	return session, ok
}

// Remove drops and closes the viewer's session if it is still the one given.
func (r *SessionRegistry) Remove(viewerID string, session *ChatSession) {
	r.mu.Lock()
	if r.sessions[viewerID] == session {
		delete(r.sessions, viewerID)
	}
	r.mu.Unlock()

	session.Close()
}
