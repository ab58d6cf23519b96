package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "contacts.json"))
}

func newContact(owner, name, email, phone string, created time.Time) *contact.Contact {
	return &contact.Contact{
		ID:          id.NewContactID(),
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
		OwnerID:     owner,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestAddAndGet(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	c := newContact("u1", "Ana", "ana@x.com", "+15550001", time.Now().UTC())
	if err := s.AddContact(ctx, c); err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	got, err := s.GetContact(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got.Name != "Ana" || got.OwnerID != "u1" {
		t.Fatalf("unexpected contact %+v", got)
	}

	// The store hands out clones.
	got.Name = "changed"
	again, _ := s.GetContact(ctx, c.ID)
	if again.Name != "Ana" {
		t.Fatal("mutating a returned contact leaked into the store")
	}
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.GetContact(context.Background(), id.NewContactID())
	if !errors.Is(err, rolodex.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestListIsOwnerScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	base := time.Now().UTC()
	older := newContact("ana", "First", "first@x.com", "+15550001", base.Add(-time.Hour))
	newer := newContact("ana", "Second", "second@x.com", "+15550002", base)
	other := newContact("bo", "Bo's friend", "friend@x.com", "+15550003", base)

	for _, c := range []*contact.Contact{older, newer, other} {
		if err := s.AddContact(ctx, c); err != nil {
			t.Fatalf("AddContact: %v", err)
		}
	}

	got, err := s.ListContacts(ctx, "ana")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts for ana, got %d", len(got))
	}
	if got[0].Name != "Second" || got[1].Name != "First" {
		t.Fatalf("expected newest first, got [%s, %s]", got[0].Name, got[1].Name)
	}

	bo, err := s.ListContacts(ctx, "bo")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(bo) != 1 || bo[0].Name != "Bo's friend" {
		t.Fatalf("unexpected contacts for bo: %+v", bo)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	c := newContact("u1", "Ana", "ana@x.com", "+15550001", time.Now().UTC())
	if err := s.AddContact(ctx, c); err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	upd := c.Clone()
	upd.Name = "Ana Maria"
	if err := s.UpdateContact(ctx, upd); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}

	got, _ := s.GetContact(ctx, c.ID)
	if got.Name != "Ana Maria" {
		t.Fatalf("Name = %q after update", got.Name)
	}
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	past := time.Now().UTC().Add(-time.Hour)
	c := newContact("u1", "Ana", "ana@x.com", "+15550001", past)
	if err := s.AddContact(ctx, c); err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	upd := c.Clone()
	upd.Name = "Ana Maria"
	if err := s.UpdateContact(ctx, upd); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if !upd.UpdatedAt.After(past) {
		t.Fatalf("UpdatedAt not written back: %v", upd.UpdatedAt)
	}

	got, err := s.GetContact(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if !got.UpdatedAt.After(past) {
		t.Fatalf("stored UpdatedAt not refreshed: %v", got.UpdatedAt)
	}
	if !got.CreatedAt.Equal(past) {
		t.Fatalf("CreatedAt changed on update: %v", got.CreatedAt)
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := testStore(t)
	c := newContact("u1", "Ghost", "ghost@x.com", "+15550001", time.Now().UTC())
	err := s.UpdateContact(context.Background(), c)
	if !errors.Is(err, rolodex.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	c := newContact("u1", "Ana", "ana@x.com", "+15550001", time.Now().UTC())
	if err := s.AddContact(ctx, c); err != nil {
		t.Fatalf("AddContact: %v", err)
	}
	if err := s.DeleteContact(ctx, c.ID); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	if _, err := s.GetContact(ctx, c.ID); !errors.Is(err, rolodex.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound after delete, got %v", err)
	}

	if err := s.DeleteContact(ctx, c.ID); !errors.Is(err, rolodex.ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound on second delete, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	base := time.Now().UTC()
	contacts := []*contact.Contact{
		newContact("u1", "Ana Smith", "ana@example.com", "+15550001", base),
		newContact("u1", "Bo Jones", "bo@other.org", "+4477123", base.Add(time.Second)),
		newContact("u2", "Ana Other", "ana@elsewhere.com", "+15550009", base),
	}
	for _, c := range contacts {
		if err := s.AddContact(ctx, c); err != nil {
			t.Fatalf("AddContact: %v", err)
		}
	}

	tests := []struct {
		name  string
		term  string
		want  int
		first string
	}{
		{"name case-insensitive", "ANA", 1, "Ana Smith"},
		{"email domain", "other.org", 1, "Bo Jones"},
		{"phone substring", "4477", 1, "Bo Jones"},
		{"empty term lists all", "", 2, "Bo Jones"},
		{"whitespace term lists all", "   ", 2, "Bo Jones"},
		{"no match", "zzz", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchContacts(ctx, "u1", tt.term)
			if err != nil {
				t.Fatalf("SearchContacts: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d results, want %d", len(got), tt.want)
			}
			if tt.want > 0 && got[0].Name != tt.first {
				t.Fatalf("first result %q, want %q", got[0].Name, tt.first)
			}
		})
	}
}

func TestSearchAfterPhoneUpdate(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	c := newContact("u1", "Ana", "ana@x.com", "+15550001", time.Now().UTC())
	if err := s.AddContact(ctx, c); err != nil {
		t.Fatalf("AddContact: %v", err)
	}

	upd := c.Clone()
	upd.PhoneNumber = "+15559999"
	if err := s.UpdateContact(ctx, upd); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}

	got, err := s.SearchContacts(ctx, "u1", "9999")
	if err != nil {
		t.Fatalf("SearchContacts: %v", err)
	}
	if len(got) != 1 || got[0].PhoneNumber != "+15559999" {
		t.Fatalf("unexpected search result %+v", got)
	}
	if hits, _ := s.SearchContacts(ctx, "u1", "0001"); len(hits) != 0 {
		t.Fatalf("old phone number still matches: %+v", hits)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contacts.json")

	s1 := New(path)
	base := time.Now().UTC().Truncate(time.Millisecond)
	want := []*contact.Contact{
		newContact("u1", "Ana", "ana@x.com", "+15550001", base.Add(time.Second)),
		newContact("u1", "Bo", "bo@x.com", "+15550002", base),
	}
	want[0].Address = "221B Baker Street"
	for _, c := range want {
		if err := s1.AddContact(ctx, c); err != nil {
			t.Fatalf("AddContact: %v", err)
		}
	}

	s2 := New(path)
	got, err := s2.ListContacts(ctx, "u1")
	if err != nil {
		t.Fatalf("ListContacts after reload: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingFileStartsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope", "contacts.json"))
	got, err := s.ListContacts(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %d contacts", len(got))
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path)
	got, err := s.ListContacts(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty store, got %d contacts", len(got))
	}
}

func TestPersistFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// Make the parent "directory" a regular file so writes fail.
	blocker := filepath.Join(dir, "data")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(filepath.Join(blocker, "contacts.json"))
	c := newContact("u1", "Ana", "ana@x.com", "+15550001", time.Now().UTC())
	if err := s.AddContact(ctx, c); err == nil {
		t.Fatal("expected persist error")
	}

	// The mutation survives in memory even though the write failed.
	got, err := s.GetContact(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got.Name != "Ana" {
		t.Fatalf("unexpected contact %+v", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			owner := fmt.Sprintf("u%d", n%2)
			c := newContact(owner, fmt.Sprintf("C%d", n), "c@x.com", "+15550001", time.Now().UTC())
			if err := s.AddContact(ctx, c); err != nil {
				t.Errorf("AddContact: %v", err)
			}
			if _, err := s.ListContacts(ctx, owner); err != nil {
				t.Errorf("ListContacts: %v", err)
			}
		}(i)
	}
	wg.Wait()

	a, _ := s.ListContacts(ctx, "u0")
	b, _ := s.ListContacts(ctx, "u1")
	if len(a)+len(b) != 8 {
		t.Fatalf("expected 8 contacts total, got %d", len(a)+len(b))
	}
}
