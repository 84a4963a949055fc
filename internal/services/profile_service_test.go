package services

import (
	"context"
	"testing"

	"github.com/lightmeal/calorie-helper/internal/domain"
	"github.com/lightmeal/calorie-helper/internal/storage"
)

func TestProfileService_DefaultWhenAbsent(t *testing.T) {
	s := NewProfileService(context.Background(), storage.NewMemoryStore())
	if got := s.Get(); got != domain.DefaultProfile() {
		t.Errorf("Get = %+v, want default profile", got)
	}
}

func TestProfileService_MalformedFallsBackToDefault(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, storage.KeyProfile, "{\"height\": oops"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := NewProfileService(ctx, store)
	if got := s.Get(); got != domain.DefaultProfile() {
		t.Errorf("Get after malformed load = %+v, want default profile", got)
	}
}

func TestProfileService_SetPersistsRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	s := NewProfileService(ctx, store)

	next := domain.UserProfile{
		Height:        180,
		Weight:        75,
		Age:           31,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityModerate,
		Goal:          domain.GoalGain,
		TargetWeight:  80,
	}
	if err := s.Set(ctx, next); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get(); got != next {
		t.Errorf("Get = %+v, want %+v", got, next)
	}

	reloaded := NewProfileService(ctx, store)
	if got := reloaded.Get(); got != next {
		t.Errorf("reloaded Get = %+v, want %+v", got, next)
	}
}

func TestProfileService_SetReplacesWholesale(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	s := NewProfileService(ctx, store)

	withTarget := domain.DefaultProfile()
	withTarget.Goal = domain.GoalLose
	withTarget.TargetWeight = 50
	if err := s.Set(ctx, withTarget); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A full replacement without TargetWeight must clear it, not merge.
	without := domain.DefaultProfile()
	if err := s.Set(ctx, without); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Get(); got.TargetWeight != 0 {
		t.Errorf("TargetWeight = %v after wholesale replacement, want 0", got.TargetWeight)
	}
}
