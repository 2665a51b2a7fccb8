package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// newTestRedis connects to CASEMENT_TEST_REDIS_URL and skips when it is
// unset or unreachable.
func newTestRedis(t *testing.T) *RedisCache {
	t.Helper()
	url := os.Getenv("CASEMENT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("CASEMENT_TEST_REDIS_URL not set, skipping redis test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := NewRedisCache(ctx, url)
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRedisCache(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()
	t.Cleanup(func() { c.Delete(context.Background(), key) })

	data, hit, err := c.Get(ctx, key)
	if err != nil || hit || data != nil {
		t.Fatalf("Get(missing) = %q, %v, %v; want a clean miss", data, hit, err)
	}

	if err := c.Set(ctx, key, []byte("solid"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err = c.Get(ctx, key)
	if err != nil || !hit || string(data) != "solid" {
		t.Fatalf("Get = %q, %v, %v; want solid", data, hit, err)
	}

	ttl, err := c.client.TTL(ctx, keyPrefix+key).Result()
	if err != nil || ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v, %v; want (0, 1m]", ttl, err)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Errorf("Get after Delete = %v, %v; want miss", hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("Delete(missing) = %v", err)
	}
}

func TestRedisCacheExpires(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	if err := c.Set(ctx, key, []byte("x"), 50*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Errorf("Get after ttl = %v, %v; want miss", hit, err)
	}
}
