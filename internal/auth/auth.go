package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/reelterm/reel/internal/domain"
	"github.com/reelterm/reel/internal/store"
)

// account is the stored form of a local account.
type account struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    time.Time `json:"lastLogin,omitempty"`
}

// Service manages the local account database. Accounts live in the same
// bbolt database as persisted state, keyed by username.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates a new authentication service
func NewService(st *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger}
}

// Register creates a new account with a bcrypt password hash.
func (s *Service) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	if _, exists := s.store.GetAccount(username); exists {
		return domain.ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	acct := account{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	data, err := json.Marshal(acct)
	if err != nil {
		return err
	}
	if err := s.store.PutAccount(username, data); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	s.logger.Info("account registered", "username", username)
	return nil
}

// Login verifies credentials and returns a fresh session with an opaque
// random token.
func (s *Service) Login(username, password string) (domain.Session, error) {
	username = strings.TrimSpace(username)

	data, exists := s.store.GetAccount(username)
	if !exists {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	var acct account
	if err := json.Unmarshal(data, &acct); err != nil {
		s.logger.Warn("corrupt account record", "username", username, "error", err)
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	acct.LastLogin = time.Now()
	if updated, err := json.Marshal(acct); err == nil {
		if err := s.store.PutAccount(username, updated); err != nil {
			s.logger.Warn("failed to record last login", "username", username, "error", err)
		}
	}

	return domain.Session{
		Token:     generateToken(),
		Username:  acct.Username,
		CreatedAt: time.Now(),
	}, nil
}

// generateToken returns a secure random token
func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback
		return fmt.Sprintf("tok-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)
}
