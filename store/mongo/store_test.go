package mongo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xraph/grove"

	"github.com/xraph/rolodex/id"
)

func credentialsFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service-account.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAvailable(t *testing.T) {
	s := NewLazy(Config{}, nil)
	if s.Available() {
		t.Fatal("store without credentials should not be available")
	}

	s = NewLazy(Config{CredentialsFile: "/nonexistent/creds.json", ProjectID: "p1"}, nil)
	if s.Available() {
		t.Fatal("store with missing credentials file should not be available")
	}

	s = NewLazy(Config{CredentialsFile: credentialsFile(t), ProjectID: "p1"}, nil)
	if !s.Available() {
		t.Fatal("store with readable credentials file should be available")
	}
}

func TestUnconfiguredErrorIsDescriptive(t *testing.T) {
	dialed := 0
	s := NewLazy(Config{Collection: "contacts"}, func(context.Context) (*grove.DB, error) {
		dialed++
		return nil, errors.New("should not dial")
	})

	_, err := s.GetContact(context.Background(), id.NewContactID())
	if err == nil {
		t.Fatal("expected error from unconfigured store")
	}
	for _, want := range []string{"credentials file", "project", `"contacts"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	if dialed != 0 {
		t.Fatalf("dial was called %d times for an unconfigured store", dialed)
	}
}

func TestEnsureCachesFailure(t *testing.T) {
	ctx := context.Background()
	dialed := 0
	s := NewLazy(
		Config{CredentialsFile: credentialsFile(t), ProjectID: "p1"},
		func(context.Context) (*grove.DB, error) {
			dialed++
			return nil, errors.New("connection refused")
		},
	)

	first := s.Ping(ctx)
	second := s.Ping(ctx)
	if first == nil || second == nil {
		t.Fatal("expected dial failure to propagate")
	}
	if first.Error() != second.Error() {
		t.Fatalf("cached error changed: %q vs %q", first, second)
	}
	if dialed != 1 {
		t.Fatalf("dial was called %d times, want 1", dialed)
	}
}

func TestMissingCredentialsFileNamed(t *testing.T) {
	s := NewLazy(Config{CredentialsFile: "/nope/creds.json", ProjectID: "p1"}, nil)
	err := s.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error for unreadable credentials file")
	}
	if !strings.Contains(err.Error(), "/nope/creds.json") {
		t.Fatalf("error %q does not name the credentials file", err)
	}
	if !strings.Contains(err.Error(), "p1") {
		t.Fatalf("error %q does not name the project", err)
	}
}

func TestCloseWithoutConnection(t *testing.T) {
	s := NewLazy(Config{}, nil)
	if err := s.Close(); err != nil {
		t.Fatalf("Close on undialed store: %v", err)
	}
}
