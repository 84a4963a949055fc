package domain

import (
	"context"
)

// ProfileService owns the single active user profile.
type ProfileService interface {
	Get() UserProfile
	Set(ctx context.Context, next UserProfile) error
}

// RecordService owns the ordered food-record collection and its
// aggregation into daily totals.
type RecordService interface {
	Add(ctx context.Context, input RecordInput) (FoodRecord, error)
	All() []FoodRecord
	Summary(ctx context.Context) (DailySummary, error)
}

// SessionService tracks login state and identity.
type SessionService interface {
	Login(ctx context.Context, username, password string) (Session, error)
	Logout(ctx context.Context) (defaultView string, err error)
	Current() Session
}

// AuthProvider verifies credentials. The shipped default is a mock that
// accepts any non-empty pair after an artificial delay; a credential-file
// implementation backs real verification.
type AuthProvider interface {
	Verify(ctx context.Context, username, password string) error
}

// AIProvider is the narrow contract with the external generative-AI
// service. Implementations may fail; the assistant service wrapping the
// provider recovers every failure into a safe default.
type AIProvider interface {
	AnalyzeImage(ctx context.Context, imageData []byte) (*FoodRecognition, error)
	SearchFood(ctx context.Context, query string) (*FoodSearchResult, error)
	Chat(ctx context.Context, message string) (string, error)
	EditImage(ctx context.Context, imageData []byte, instruction string) ([]byte, error)
}
