package driver

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskCachePutGet(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}

	key := sha256.Sum256([]byte("f::(a);"))
	payload := &CachePayload{
		Schema:       diskCacheSchemaVersion,
		Path:         "a.js",
		ContentHash:  key,
		RewriteCount: 1,
		DiagCount:    0,
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var got CachePayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got.Path != "a.js" || got.RewriteCount != 1 {
		t.Errorf("payload: got %+v", got)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var got CachePayload
	hit, err := cache.Get(sha256.Sum256([]byte("nothing")), &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Error("expected cache miss")
	}
}

func TestDiskCacheStaleSchemaIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := sha256.Sum256([]byte("old"))
	if err := cache.Put(key, &CachePayload{Schema: diskCacheSchemaVersion - 1}); err != nil {
		t.Fatal(err)
	}

	var got CachePayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hit {
		t.Error("stale schema should read as a miss")
	}
}

func TestDiskCacheNilIsNoOp(t *testing.T) {
	var cache *DiskCache
	key := sha256.Sum256([]byte("x"))
	if err := cache.Put(key, &CachePayload{}); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	var got CachePayload
	hit, err := cache.Get(key, &got)
	if err != nil || hit {
		t.Errorf("nil Get: hit=%v err=%v", hit, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil DropAll: %v", err)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	key := sha256.Sum256([]byte("x"))
	if err := cache.Put(key, &CachePayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}
	var got CachePayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get after DropAll: %v", err)
	}
	if hit {
		t.Error("expected miss after DropAll")
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.js": "f::(x);",
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	_, first, err := CheckDir(context.Background(), dir, Options{}, cache)
	if err != nil {
		t.Fatalf("first CheckDir failed: %v", err)
	}
	if len(first) != 1 || first[0].FromCache {
		t.Fatalf("first run: got %+v", first)
	}
	if first[0].Rewrites != 1 {
		t.Errorf("rewrites: got %d, want 1", first[0].Rewrites)
	}

	_, second, err := CheckDir(context.Background(), dir, Options{}, cache)
	if err != nil {
		t.Fatalf("second CheckDir failed: %v", err)
	}
	if !second[0].FromCache {
		t.Error("second run should hit the cache")
	}
	if second[0].Rewrites != 1 {
		t.Errorf("cached rewrites: got %d, want 1", second[0].Rewrites)
	}

	// content change invalidates by keying
	if err := os.WriteFile(filepath.Join(dir, "a.js"), []byte("f::(x); g::(y);"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, third, err := CheckDir(context.Background(), dir, Options{}, cache)
	if err != nil {
		t.Fatalf("third CheckDir failed: %v", err)
	}
	if third[0].FromCache {
		t.Error("changed file must not hit the cache")
	}
	if third[0].Rewrites != 2 {
		t.Errorf("rewrites after change: got %d, want 2", third[0].Rewrites)
	}
}

func TestCheckDirErrorFilesNotServedFromCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"bad.js": "f::(;",
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	_, first, err := CheckDir(context.Background(), dir, Options{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !first[0].HadErrors {
		t.Fatal("expected errors on first run")
	}

	_, second, err := CheckDir(context.Background(), dir, Options{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if second[0].FromCache {
		t.Error("files with errors must be re-checked")
	}
	if second[0].Bag == nil || !second[0].Bag.HasErrors() {
		t.Error("re-check must produce a diagnostics bag")
	}
}
