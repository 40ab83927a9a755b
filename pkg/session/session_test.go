package session

import (
	"context"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	sess := New("P05067", time.Hour)

	if sess.ID == "" {
		t.Error("New should assign an ID")
	}
	if sess.Accession != "P05067" {
		t.Errorf("Accession = %q, want P05067", sess.Accession)
	}
	if sess.IsExpired() {
		t.Error("fresh session should not be expired")
	}

	other := New("P05067", time.Hour)
	if other.ID == sess.ID {
		t.Error("IDs should be unique")
	}
}

func TestIsExpired(t *testing.T) {
	sess := New("P05067", -time.Minute)
	if !sess.IsExpired() {
		t.Error("session with past expiry should be expired")
	}
}

// storeTest exercises the Store contract against any backend.
func storeTest(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	// Missing session
	got, err := store.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if got != nil {
		t.Error("Get for missing session should return nil")
	}

	// Round trip
	sess := New("P05067", time.Hour)
	sess.DisplayStart, sess.DisplayEnd = 250, 260
	sess.Tracks = []string{"sequence", "variation"}
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err = store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for stored session")
	}
	if got.Accession != "P05067" || got.DisplayStart != 250 || got.DisplayEnd != 260 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Tracks) != 2 {
		t.Errorf("Tracks = %v, want 2 entries", got.Tracks)
	}

	// Expired sessions read as missing
	stale := New("P05067", time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	if err := store.Set(ctx, stale); err != nil {
		t.Fatalf("Set stale: %v", err)
	}
	if got, _ := store.Get(ctx, stale.ID); got != nil {
		t.Error("expired session should read as missing")
	}

	// Delete
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := store.Get(ctx, sess.ID); got != nil {
		t.Error("deleted session should be gone")
	}

	// Deleting a missing session is not an error
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	storeTest(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	storeTest(t, store)
}

func TestFileStoreCleanup(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	live := New("P05067", time.Hour)
	stale := New("P05067", time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	if err := store.Set(ctx, live); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, stale); err != nil {
		t.Fatal(err)
	}

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if got, _ := store.Get(ctx, live.ID); got == nil {
		t.Error("live session removed by cleanup")
	}
	if got, _ := store.Get(ctx, stale.ID); got != nil {
		t.Error("stale session survived cleanup")
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	live := New("P05067", time.Hour)
	stale := New("P05067", time.Hour)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	store.Set(ctx, live)
	store.Set(ctx, stale)

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if got, _ := store.Get(ctx, live.ID); got == nil {
		t.Error("live session removed by cleanup")
	}
	if got, _ := store.Get(ctx, stale.ID); got != nil {
		t.Error("stale session survived cleanup")
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := New("P05067", time.Hour)
	sess.DisplayStart = 10
	store.Set(ctx, sess)

	// Mutating the returned copy must not affect stored state.
	got, _ := store.Get(ctx, sess.ID)
	got.DisplayStart = 999

	again, _ := store.Get(ctx, sess.ID)
	if again.DisplayStart != 10 {
		t.Errorf("stored session mutated through Get copy: %v", again.DisplayStart)
	}
}

func TestLastViewStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	t.Setenv("HOME", t.TempDir())

	store, err := NewLastViewStore()
	if err != nil {
		t.Fatalf("NewLastViewStore: %v", err)
	}

	sess := New("P05067", time.Hour)
	sess.DisplayStart, sess.DisplayEnd = 1, 100
	if err := store.SaveSession(ctx, sess); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	got, err := store.GetSession(ctx)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got == nil || got.Accession != "P05067" {
		t.Errorf("GetSession = %+v, want accession P05067", got)
	}

	if err := store.DeleteSession(ctx); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if got, _ := store.GetSession(ctx); got != nil {
		t.Error("deleted last view should be gone")
	}
}
