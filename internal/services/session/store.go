// Package session persists the authenticated user's credentials, the
// only durable local state the client keeps.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mbriard/roastcli/internal/domain"
)

// Credentials is the {user, token} pair returned by the auth endpoints
type Credentials struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Store reads and writes credentials at a fixed path. Written on
// login/registration success, cleared on logout.
type Store struct {
	mu     sync.RWMutex
	path   string
	creds  *Credentials
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a credential store backed by the given file path
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// DefaultPath returns the standard credentials location under the
// user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "roastcli", "credentials.json"), nil
}

// Load reads stored credentials. A missing file or an expired token
// means logged out (nil, nil); corrupt files are treated the same way
// after clearing them.
func (s *Store) Load() (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		s.logger.Warn("discarding corrupt credentials file", "path", s.path, "error", err)
		_ = os.Remove(s.path)
		return nil, nil
	}

	if creds.Token == "" || tokenExpired(creds.Token, s.now()) {
		s.logger.Info("stored token expired, logging out")
		_ = os.Remove(s.path)
		return nil, nil
	}

	s.creds = &creds
	return &creds, nil
}

// Save writes credentials to disk and holds them in memory
func (s *Store) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	s.creds = &creds
	return nil
}

// UpdateUser merges profile changes into the stored user
func (s *Store) UpdateUser(user domain.User) error {
	s.mu.Lock()
	creds := s.creds
	s.mu.Unlock()

	if creds == nil {
		return errors.New("not logged in")
	}
	return s.Save(Credentials{Token: creds.Token, User: user})
}

// Clear removes credentials from disk and memory
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}

// Token returns the bearer token for outgoing requests, empty when
// logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.Token
}

// Current returns the in-memory credentials, nil when logged out
func (s *Store) Current() *Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job, this only avoids
// presenting a token the server is guaranteed to reject.
func tokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque tokens pass through; the server decides.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
