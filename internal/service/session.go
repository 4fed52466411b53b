package service

import (
	"log/slog"

	"github.com/reelterm/reel/internal/auth"
	"github.com/reelterm/reel/internal/state"
)

// SessionService mediates between the account database and the session
// state.
type SessionService struct {
	auth   *auth.Service
	state  *state.SessionState
	logger *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(authSvc *auth.Service, st *state.SessionState, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{auth: authSvc, state: st, logger: logger}
}

// Login verifies credentials and signs the user in.
func (s *SessionService) Login(username, password string) error {
	session, err := s.auth.Login(username, password)
	if err != nil {
		return err
	}
	s.state.SignIn(session)
	s.logger.Info("signed in", "username", session.Username)
	return nil
}

// Register creates an account and signs the user in.
func (s *SessionService) Register(username, password string) error {
	if err := s.auth.Register(username, password); err != nil {
		return err
	}
	return s.Login(username, password)
}

// Logout clears the session.
func (s *SessionService) Logout() {
	s.state.SignOut()
	s.logger.Info("signed out")
}

// SignedIn reports whether a session is active.
func (s *SessionService) SignedIn() bool {
	return s.state.SignedIn()
}

// Username returns the signed-in username, or "".
func (s *SessionService) Username() string {
	if session := s.state.Current(); session != nil {
		return session.Username
	}
	return ""
}
