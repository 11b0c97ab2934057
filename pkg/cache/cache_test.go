package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := ArtifactKeyOpts{Kind: "lanes", Format: "svg", Settings: map[string]float64{"radius": 3}}
	key := k.ArtifactKey("doc", base)
	if !strings.HasPrefix(key, "artifact:") {
		t.Errorf("ArtifactKey = %q, want artifact: prefix", key)
	}
	if key != k.ArtifactKey("doc", base) {
		t.Error("ArtifactKey should be deterministic")
	}

	variants := []struct {
		name string
		hash string
		opts ArtifactKeyOpts
	}{
		{"document", "other", base},
		{"kind", "doc", ArtifactKeyOpts{Kind: "flow", Format: "svg", Settings: base.Settings}},
		{"format", "doc", ArtifactKeyOpts{Kind: "lanes", Format: "png", Settings: base.Settings}},
		{"settings", "doc", ArtifactKeyOpts{Kind: "lanes", Format: "svg", Settings: map[string]float64{"radius": 4}}},
	}
	for _, v := range variants {
		if k.ArtifactKey(v.hash, v.opts) == key {
			t.Errorf("changing %s should change the key", v.name)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := ArtifactKeyOpts{Kind: "flow", Format: "json"}
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(nil, "ci:")

	if got, want := scoped.ArtifactKey("doc", opts), "ci:"+inner.ArtifactKey("doc", opts); got != want {
		t.Errorf("ArtifactKey = %q, want %q", got, want)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = hit %v, err %v, want miss", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Errorf("Get(key) = %q, %v, %v, want <svg/> hit", data, hit, err)
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestFileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	fc := &FileCache{dir: t.TempDir(), now: time.Now}

	if err := fc.Set(ctx, "key", []byte("x"), time.Minute); err != nil {
		t.Fatal(err)
	}
	fc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, hit, _ := fc.Get(ctx, "key"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(fc.path("key")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}

	if err := fc.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatal(err)
	}
	fc.now = func() time.Time { return time.Now().Add(10 * 365 * 24 * time.Hour) }
	if _, hit, _ := fc.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should not expire")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	fc := &FileCache{dir: t.TempDir(), now: time.Now}

	path := fc.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := fc.Get(ctx, "key"); hit || err != nil {
		t.Errorf("corrupt entry = hit %v, err %v, want silent miss", hit, err)
	}
}

func TestClearDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := ClearDir(dir)
	if err != nil {
		t.Fatalf("ClearDir error: %v", err)
	}
	if n != 3 {
		t.Errorf("ClearDir removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entries should be gone after ClearDir")
	}

	if n, err := ClearDir(filepath.Join(dir, "nope")); n != 0 || err != nil {
		t.Errorf("ClearDir(missing) = %d, %v, want 0, nil", n, err)
	}
}
