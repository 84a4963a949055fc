package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lightmeal/calorie-helper/internal/domain"
	"github.com/lightmeal/calorie-helper/internal/errors"
	"github.com/lightmeal/calorie-helper/internal/logger"
	"github.com/lightmeal/calorie-helper/internal/storage"
)

// DefaultView is the navigational state the presentation layer returns
// to after logout.
const DefaultView = "home"

// SessionService tracks login state and identity. Credential
// verification is delegated to the injected AuthProvider.
type SessionService struct {
	store storage.Store
	auth  domain.AuthProvider

	mu      sync.RWMutex
	session domain.Session
}

// NewSessionService restores any persisted session. The token is not
// persisted; a restored session gets a fresh one, so API clients must
// log in again to learn it even when the logged-in flag survived.
func NewSessionService(ctx context.Context, store storage.Store, auth domain.AuthProvider) *SessionService {
	s := &SessionService{store: store, auth: auth}

	loggedIn, err := store.Get(ctx, storage.KeyLoggedIn)
	if err != nil || loggedIn != "true" {
		return s
	}
	username, err := store.Get(ctx, storage.KeyUsername)
	if err != nil || username == "" {
		return s
	}
	s.session = domain.Session{LoggedIn: true, Username: username, Token: uuid.NewString()}
	return s
}

// Login verifies credentials through the AuthProvider and, on success,
// establishes the session and persists it.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if username == "" {
		return domain.Session{}, errors.NewValidationError("username must not be empty")
	}

	if err := s.auth.Verify(ctx, username, password); err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{LoggedIn: true, Username: username, Token: uuid.NewString()}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if err := s.store.Set(ctx, storage.KeyLoggedIn, "true"); err != nil {
		return session, errors.NewStorageError(err)
	}
	if err := s.store.Set(ctx, storage.KeyUsername, username); err != nil {
		return session, errors.NewStorageError(err)
	}
	logger.Info("User logged in", "username", username)
	return session, nil
}

// Logout clears the session and its persisted keys and reports the
// default view for the presentation layer to reset to.
func (s *SessionService) Logout(ctx context.Context) (string, error) {
	s.mu.Lock()
	username := s.session.Username
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.store.Delete(ctx, storage.KeyLoggedIn); err != nil {
		return DefaultView, errors.NewStorageError(err)
	}
	if err := s.store.Delete(ctx, storage.KeyUsername); err != nil {
		return DefaultView, errors.NewStorageError(err)
	}
	logger.Info("User logged out", "username", username)
	return DefaultView, nil
}

// Current returns the active session.
func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}
