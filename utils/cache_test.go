package utils

import (
	"strings"
	"testing"
	"time"
)

func TestQueryCacheKey(t *testing.T) {
	a := QueryCacheKey("search", map[string]string{"region": "Maule", "page": "2"})
	b := QueryCacheKey("search", map[string]string{"page": "2", "region": "Maule"})
	if a != b {
		t.Errorf("same params should produce same key: %s != %s", a, b)
	}

	c := QueryCacheKey("search", map[string]string{"region": "Maule", "page": "3"})
	if a == c {
		t.Error("different params should produce different keys")
	}

	if !strings.HasPrefix(a, "search:") {
		t.Errorf("key %q missing prefix", a)
	}

	// Key must not vary between calls.
	if again := QueryCacheKey("search", map[string]string{"region": "Maule", "page": "2"}); again != a {
		t.Errorf("key not deterministic: %s != %s", again, a)
	}
}

func TestCacheDisabledIsNoOp(t *testing.T) {
	redisClient = nil

	if CacheEnabled() {
		t.Fatal("cache should be disabled without a client")
	}

	hit, err := GetCached(t.Context(), "search:none", &struct{}{})
	if err != nil || hit {
		t.Errorf("GetCached without client: hit=%v err=%v", hit, err)
	}
	if err := SetCached(t.Context(), "search:none", 1, time.Second); err != nil {
		t.Errorf("SetCached without client: %v", err)
	}
}

func TestSearchCacheTTL(t *testing.T) {
	t.Setenv("SEARCH_CACHE_TTL_SECONDS", "")
	if got := SearchCacheTTL(); got != 60*time.Second {
		t.Errorf("default TTL = %v, want 60s", got)
	}

	t.Setenv("SEARCH_CACHE_TTL_SECONDS", "300")
	if got := SearchCacheTTL(); got != 300*time.Second {
		t.Errorf("TTL = %v, want 300s", got)
	}
}
