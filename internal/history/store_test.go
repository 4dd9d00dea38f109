package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordSelectionInsertsAndIncrements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.RecordSelection(ctx, "user-1", "Konzert", "category"); err != nil {
		t.Fatalf("first selection failed: %v", err)
	}
	if err := store.RecordSelection(ctx, "user-1", "Konzert", "category"); err != nil {
		t.Fatalf("second selection failed: %v", err)
	}

	records, err := store.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].SearchCount != 2 {
		t.Errorf("SearchCount = %d, want 2", records[0].SearchCount)
	}
	if records[0].Term != "Konzert" {
		t.Errorf("Term = %q, want Konzert", records[0].Term)
	}
}

func TestStore_FoldedTermsShareOneRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Case and umlaut variants of the same term must not create duplicates.
	for _, term := range []string{"München", "münchen", "MUNCHEN"} {
		if err := store.RecordSelection(ctx, "user-1", term, "city"); err != nil {
			t.Fatalf("RecordSelection(%q) failed: %v", term, err)
		}
	}

	records, err := store.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 shared record", len(records))
	}
	if records[0].SearchCount != 3 {
		t.Errorf("SearchCount = %d, want 3", records[0].SearchCount)
	}
	// The display form follows the latest selection.
	if records[0].Term != "MUNCHEN" {
		t.Errorf("Term = %q, want MUNCHEN", records[0].Term)
	}
}

func TestStore_ListNewestFirstPerUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	store.WithClock(func() time.Time { return now })
	if err := store.RecordSelection(ctx, "user-1", "Theater", "category"); err != nil {
		t.Fatal(err)
	}

	store.WithClock(func() time.Time { return now.Add(time.Hour) })
	if err := store.RecordSelection(ctx, "user-1", "Konzert", "category"); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordSelection(ctx, "user-2", "Flohmarkt", "category"); err != nil {
		t.Fatal(err)
	}

	records, err := store.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records for user-1, want 2", len(records))
	}
	if records[0].Term != "Konzert" || records[1].Term != "Theater" {
		t.Errorf("order = [%s, %s], want newest first", records[0].Term, records[1].Term)
	}
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.RecordSelection(ctx, "user-1", "Weißwurstfrühstück", "event"); err != nil {
		t.Fatal(err)
	}
	// Delete matches on the folded form.
	if err := store.Delete(ctx, "user-1", "weisswurstfruhstuck"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	count, err := store.Count(ctx, "user-1")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d after delete, want 0", count)
	}

	// Deleting an absent term is a no-op.
	if err := store.Delete(ctx, "user-1", "nicht da"); err != nil {
		t.Errorf("deleting absent term failed: %v", err)
	}
}

func TestStore_RejectsEmptyTerm(t *testing.T) {
	store := newTestStore(t)
	if err := store.RecordSelection(context.Background(), "user-1", "   ", "category"); err == nil {
		t.Error("expected error for whitespace-only term")
	}
}
