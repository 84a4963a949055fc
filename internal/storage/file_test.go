package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, KeyUsername, "mia"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, KeyUsername)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "mia" {
		t.Errorf("Get = %q, want %q", got, "mia")
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Set(ctx, KeyLoggedIn, "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(ctx, KeyLoggedIn)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != "true" {
		t.Errorf("Get = %q, want %q", got, "true")
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get on absent key = %v, want ErrKeyNotFound", err)
	}
}

func TestFileStore_CorruptDocumentTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore on corrupt file: %v", err)
	}
	if _, err := s.Get(context.Background(), KeyProfile); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get on corrupt store = %v, want ErrKeyNotFound", err)
	}

	// The store must remain writable after recovering from corruption.
	if err := s.Set(context.Background(), KeyProfile, "{}"); err != nil {
		t.Errorf("Set after corruption: %v", err)
	}
}

func TestFileStore_Delete(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Set(ctx, KeyUsername, "mia"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(ctx, KeyUsername); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, KeyUsername); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get after delete = %v, want ErrKeyNotFound", err)
	}
}

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, KeyRecords); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get on empty store = %v, want ErrKeyNotFound", err)
	}
	if err := s.Set(ctx, KeyRecords, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, KeyRecords)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "[]" {
		t.Errorf("Get = %q, want %q", got, "[]")
	}
	if err := s.Delete(ctx, KeyRecords); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, KeyRecords); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get after delete = %v, want ErrKeyNotFound", err)
	}
}
