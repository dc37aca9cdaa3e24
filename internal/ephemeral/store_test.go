package ephemeral

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "preview.txt")
	if err := os.WriteFile(path, []byte("plaintext"), 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}

	return path
}

func TestStorePutTake(t *testing.T) {
	t.Parallel()

	store := New(time.Minute)
	path := tempFile(t)

	id, err := store.Put(path)
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}

	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}

	got, ok := store.Take(id)
	if !ok || got != path {
		t.Fatalf("Take = (%q, %v), want (%q, true)", got, ok, path)
	}

	if store.Len() != 0 {
		t.Errorf("Len = %d after Take, want 0", store.Len())
	}

	if _, ok := store.Take(id); ok {
		t.Error("second Take of the same id succeeded")
	}
}

func TestStoreTakeExpired(t *testing.T) {
	t.Parallel()

	store := New(time.Minute)

	base := time.Now()
	store.now = func() time.Time { return base }

	path := tempFile(t)

	id, err := store.Put(path)
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}

	store.now = func() time.Time { return base.Add(2 * time.Minute) }

	if _, ok := store.Take(id); ok {
		t.Error("Take returned an expired entry")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expired file should have been removed")
	}
}

func TestStoreSweep(t *testing.T) {
	t.Parallel()

	store := New(time.Minute)

	base := time.Now()
	store.now = func() time.Time { return base }

	expired := tempFile(t)

	if _, err := store.Put(expired); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	store.now = func() time.Time { return base.Add(30 * time.Second) }

	fresh := tempFile(t)

	freshID, err := store.Put(fresh)
	if err != nil {
		t.Fatalf("Put error: %v", err)
	}

	store.now = func() time.Time { return base.Add(70 * time.Second) }

	if evicted := store.Sweep(); evicted != 1 {
		t.Fatalf("Sweep evicted %d entries, want 1", evicted)
	}

	if _, err := os.Stat(expired); !os.IsNotExist(err) {
		t.Error("expired file should have been removed")
	}

	if path, ok := store.Take(freshID); !ok || path != fresh {
		t.Errorf("fresh entry lost: Take = (%q, %v)", path, ok)
	}
}

func TestStoreRunJanitor(t *testing.T) {
	t.Parallel()

	store := New(50 * time.Millisecond)
	path := tempFile(t)

	if _, err := store.Put(path); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	store.Run(ctx, 20*time.Millisecond)

	if store.Len() != 0 {
		t.Errorf("Len = %d after janitor run, want 0", store.Len())
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("janitor should have removed the expired file")
	}
}
