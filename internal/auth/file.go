package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/lightmeal/calorie-helper/internal/errors"
)

// dummyHash is a pre-computed bcrypt hash used when a login username
// isn't found. Running bcrypt against it keeps response time constant,
// preventing timing-based username enumeration.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// FileProvider verifies credentials against a JSON file mapping
// usernames to bcrypt password hashes.
type FileProvider struct {
	hashes map[string]string
}

// NewFileProvider loads the credential file at path.
func NewFileProvider(path string) (*FileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}
	var hashes map[string]string
	if err := json.Unmarshal(data, &hashes); err != nil {
		return nil, fmt.Errorf("failed to parse credential file: %w", err)
	}
	return &FileProvider{hashes: hashes}, nil
}

func (p *FileProvider) Verify(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.ErrInvalidCredentials
	}

	hash, found := p.hashes[username]
	hashToCheck := string(dummyHash)
	if found {
		hashToCheck = hash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(password))

	if !found || compareErr != nil {
		return errors.ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for the credential file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
