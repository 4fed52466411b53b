package state

import (
	"sync"

	"github.com/reelterm/reel/internal/domain"
)

// SessionState holds the authentication state: the signed-in session or
// nil. Structurally parallel to FavoritesState and persisted the same
// way through the gateway.
type SessionState struct {
	mu      sync.RWMutex
	session *domain.Session

	notifier
}

// NewSessionState creates a signed-out session state.
func NewSessionState() *SessionState {
	return &SessionState{}
}

// SignIn records the authenticated session.
func (s *SessionState) SignIn(session domain.Session) {
	s.mu.Lock()
	copied := session
	s.session = &copied
	s.mu.Unlock()

	s.notify()
}

// SignOut clears the session.
func (s *SessionState) SignOut() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.notify()
}

// Current returns a copy of the active session, or nil when signed out.
func (s *SessionState) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// SignedIn reports whether a session is active.
func (s *SessionState) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}
