package db

import (
	"path/filepath"
	"testing"
)

// openTestStore opens an in-memory SQLite store closed at test end.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreGetMissing(t *testing.T) {
	store := openTestStore(t)

	v, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || v != "" {
		t.Errorf("Get(missing) = %q, %v; want empty, false", v, ok)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("k", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set("k", "second"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != "second" {
		t.Errorf("Get = %q, %v; want %q, true", v, ok, "second")
	}

	keys, err := store.keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 {
		t.Errorf("got %d keys, want 1", len(keys))
	}
}

func TestStoreDeleteIdempotent(t *testing.T) {
	store := openTestStore(t)

	store.Set("k", "v")
	for i := 0; i < 2; i++ {
		if err := store.Delete("k"); err != nil {
			t.Fatalf("Delete #%d: %v", i+1, err)
		}
		if _, ok, _ := store.Get("k"); ok {
			t.Errorf("key still present after Delete #%d", i+1)
		}
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "webtools.sqlite")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Set(DatabaseKey, `{"probes":[]}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get(DatabaseKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || v != `{"probes":[]}` {
		t.Errorf("Get = %q, %v after reopen", v, ok)
	}
}

func TestMemoryKVZeroValue(t *testing.T) {
	var kv MemoryKV

	if _, ok, _ := kv.Get("k"); ok {
		t.Error("zero MemoryKV should be empty")
	}
	if err := kv.Delete("k"); err != nil {
		t.Errorf("Delete on empty: %v", err)
	}
	kv.Set("k", "v")
	if v, ok, _ := kv.Get("k"); !ok || v != "v" {
		t.Errorf("Get = %q, %v; want v, true", v, ok)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path := DefaultDBPath()
	if filepath.Base(path) != "webtools.sqlite" {
		t.Errorf("DefaultDBPath() = %q, want webtools.sqlite file", path)
	}
}
