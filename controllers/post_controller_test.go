package controllers

import "testing"

func TestPostCacheKeysCoverIDAndSlug(t *testing.T) {
	keys := postCacheKeys("1", "bears-win-again")
	want := []string{"cache:post:1", "cache:post:bears-win-again"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	// Exact keys, not a prefix: post 1 must never match post 12's entry.
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestPostCacheKeysWithoutSlug(t *testing.T) {
	keys := postCacheKeys("7", "")
	if len(keys) != 1 || keys[0] != "cache:post:7" {
		t.Errorf("keys = %v, want just the id entry", keys)
	}
}
