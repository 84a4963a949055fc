// Package auth provides AuthProvider implementations for the session
// controller: a mock that performs no real credential check and a
// bcrypt-backed credential file for real verification.
package auth

import (
	"context"
	"time"

	"github.com/lightmeal/calorie-helper/internal/errors"
)

// mockDelay simulates the latency of a real credential check so the
// login flow behaves the same once a real provider is swapped in.
const mockDelay = 1500 * time.Millisecond

// MockProvider accepts any non-empty username/password pair after a
// fixed artificial delay. No credentials are verified.
type MockProvider struct {
	delay time.Duration
}

// NewMockProvider creates a mock provider with the default delay.
func NewMockProvider() *MockProvider {
	return &MockProvider{delay: mockDelay}
}

// NewMockProviderWithDelay creates a mock provider with a custom delay.
// Tests use a zero delay.
func NewMockProviderWithDelay(delay time.Duration) *MockProvider {
	return &MockProvider{delay: delay}
}

func (p *MockProvider) Verify(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.ErrInvalidCredentials
	}

	select {
	case <-time.After(p.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
