package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lightmeal/calorie-helper/internal/domain"
	"github.com/lightmeal/calorie-helper/internal/errors"
	"github.com/lightmeal/calorie-helper/internal/logger"
	"github.com/lightmeal/calorie-helper/internal/storage"
)

// ProfileService owns the single active user profile. The profile is
// replaced wholesale on every edit; field ranges are not validated here
// (the boundary validates before calling in).
type ProfileService struct {
	store storage.Store

	mu      sync.RWMutex
	profile domain.UserProfile
}

// NewProfileService loads the persisted profile. An absent or malformed
// value falls back to the default profile and is never surfaced.
func NewProfileService(ctx context.Context, store storage.Store) *ProfileService {
	s := &ProfileService{
		store:   store,
		profile: domain.DefaultProfile(),
	}

	raw, err := store.Get(ctx, storage.KeyProfile)
	if err != nil {
		return s
	}
	var loaded domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logger.Warn("Persisted profile is malformed, using defaults", "error", err)
		return s
	}
	s.profile = loaded
	return s
}

// Get returns the current profile.
func (s *ProfileService) Get() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Set replaces the profile and persists it. The in-memory replacement
// happens even when the write fails; there is no transactional guarantee
// between the two.
func (s *ProfileService) Set(ctx context.Context, next domain.UserProfile) error {
	s.mu.Lock()
	s.profile = next
	s.mu.Unlock()

	data, err := json.Marshal(next)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if err := s.store.Set(ctx, storage.KeyProfile, string(data)); err != nil {
		return errors.NewStorageError(err)
	}
	return nil
}
