package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ibskk/subscription-tracker/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "subscriptions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testSub(name string) model.Subscription {
	return model.Subscription{
		Name:        name,
		Amount:      9.99,
		Cycle:       model.CycleMonthly,
		Category:    model.CategoryStreaming,
		NextPayment: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	}
}

func mustList(t *testing.T, s *Store) []model.Subscription {
	t.Helper()
	subs, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	return subs
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := s.Upsert(testSub("Netflix")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Re-opening must keep the existing rows.
	s, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s.Close()

	if got := mustList(t, s); len(got) != 1 || got[0].Name != "Netflix" {
		t.Fatalf("after reopen got %+v, want the Netflix row", got)
	}
}

func TestUpsertRoundtrip(t *testing.T) {
	s := openTestStore(t)

	want := testSub("Netflix")
	if err := s.Upsert(want); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got := mustList(t, s)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0] != want {
		t.Fatalf("roundtrip mismatch:\n got  %+v\n want %+v", got[0], want)
	}
}

func TestUpsertReplacesByName(t *testing.T) {
	s := openTestStore(t)

	first := testSub("Netflix")
	if err := s.Upsert(first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// Repeated identical upsert is idempotent.
	if err := s.Upsert(first); err != nil {
		t.Fatalf("repeat Upsert: %v", err)
	}
	if got := mustList(t, s); len(got) != 1 {
		t.Fatalf("after repeat upsert got %d records, want 1", len(got))
	}

	// Re-adding an existing name replaces the record wholesale.
	second := first
	second.Amount = 19.99
	second.Category = model.CategoryOther
	if err := s.Upsert(second); err != nil {
		t.Fatalf("replacing Upsert: %v", err)
	}

	got := mustList(t, s)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0] != second {
		t.Fatalf("replacement mismatch: got %+v, want %+v", got[0], second)
	}
}

func TestUpsertValidatesAtStoreBoundary(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		name string
		mut  func(*model.Subscription)
	}{
		{"empty name", func(m *model.Subscription) { m.Name = "" }},
		{"negative amount", func(m *model.Subscription) { m.Amount = -1 }},
		{"bad cycle", func(m *model.Subscription) { m.Cycle = "Weekly" }},
		{"bad category", func(m *model.Subscription) { m.Category = "Games" }},
		{"zero date", func(m *model.Subscription) { m.NextPayment = time.Time{} }},
	}

	for _, tt := range tests {
		sub := testSub("X")
		tt.mut(&sub)
		if err := s.Upsert(sub); err == nil {
			t.Errorf("%s: Upsert accepted an invalid record", tt.name)
		}
	}

	if got := mustList(t, s); len(got) != 0 {
		t.Fatalf("invalid records reached the table: %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	s := openTestStore(t)

	if err := s.Upsert(testSub("Gym")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	updated := testSub("Gym")
	updated.Amount = 45
	updated.Category = model.CategoryFitness
	if err := s.Update(updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := mustList(t, s)
	if len(got) != 1 || got[0] != updated {
		t.Fatalf("after update got %+v, want %+v", got, updated)
	}
}

func TestUpdateMissingName(t *testing.T) {
	s := openTestStore(t)

	err := s.Update(testSub("Ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update on missing name: err = %v, want ErrNotFound", err)
	}
}

func TestRename(t *testing.T) {
	s := openTestStore(t)

	if err := s.Upsert(testSub("Netflix")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := s.Rename("Netflix", "Netflix Premium"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	got := mustList(t, s)
	if len(got) != 1 || got[0].Name != "Netflix Premium" {
		t.Fatalf("after rename got %+v", got)
	}
}

func TestRenameRejectsCollision(t *testing.T) {
	s := openTestStore(t)

	if err := s.Upsert(testSub("Netflix")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := s.Upsert(testSub("Spotify")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	err := s.Rename("Netflix", "Spotify")
	if !errors.Is(err, ErrNameTaken) {
		t.Fatalf("colliding rename: err = %v, want ErrNameTaken", err)
	}

	// Both records must survive untouched.
	if got := mustList(t, s); len(got) != 2 {
		t.Fatalf("after rejected rename got %d records, want 2", len(got))
	}
}

func TestRenameMissingName(t *testing.T) {
	s := openTestStore(t)

	if err := s.Rename("Ghost", "Phantom"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Rename on missing name: err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Upsert(testSub("Netflix")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := s.Delete("Netflix"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := mustList(t, s); len(got) != 0 {
		t.Fatalf("after delete got %+v, want empty", got)
	}
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	s := openTestStore(t)

	if err := s.Upsert(testSub("Netflix")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := s.Delete("Ghost"); err != nil {
		t.Fatalf("Delete of absent name: %v, want nil", err)
	}
	if got := mustList(t, s); len(got) != 1 {
		t.Fatalf("delete of absent name altered the record set: %+v", got)
	}
}

func TestCount(t *testing.T) {
	s := openTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Upsert(testSub(name)); err != nil {
			t.Fatalf("Upsert %q: %v", name, err)
		}
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Fatalf("Count = %d, want 3", n)
	}
}
