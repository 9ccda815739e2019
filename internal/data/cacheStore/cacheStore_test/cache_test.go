package cacheStore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"fdalabel-api/internal/data/cacheStore"
)

func TestRedisCache_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := cacheStore.NewTestCache(client)

	ctx := context.Background()
	key := "https://api.fda.gov/drug/label.json?search=aspirin&limit=10"
	payload := `{"meta":{"results":{"total":1}},"results":[{"id":"x"}]}`

	t.Run("Set and Get Roundtrip", func(t *testing.T) {
		if err := cache.Set(ctx, key, payload, time.Minute); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, found := cache.Get(ctx, key)
		if !found {
			t.Fatal("payload was cached but not found")
		}
		if got != payload {
			t.Errorf("payload mismatch! Got %s, want %s", got, payload)
		}
	})

	t.Run("Get Missing Key", func(t *testing.T) {
		_, found := cache.Get(ctx, "ghost-key")
		if found {
			t.Error("Expected found=false for missing key")
		}
	})

	t.Run("Expired Entry", func(t *testing.T) {
		if err := cache.Set(ctx, "short-lived", payload, time.Second); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		mr.FastForward(2 * time.Second)
		if _, found := cache.Get(ctx, "short-lived"); found {
			t.Error("entry should have expired")
		}
	})
}

func TestInMemoryCache(t *testing.T) {
	cache := cacheStore.InitInMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, found := cache.Get(ctx, "k"); !found || got != "v" {
		t.Errorf("Get = (%q, %v), want (v, true)", got, found)
	}

	// already expired entry must read as missing
	if err := cache.Set(ctx, "stale", "v", -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := cache.Get(ctx, "stale"); found {
		t.Error("expired entry should not be returned")
	}
}
