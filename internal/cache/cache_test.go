package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/salesreel/internal/config"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), time.Hour))
	data, hit, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "key"))
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	_, hit, err := c.Get(ctx, "records")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "records", []byte(`[1,2]`), time.Hour))
	data, hit, err := c.Get(ctx, "records")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, `[1,2]`, string(data))

	require.NoError(t, c.Delete(ctx, "records"))
	_, hit, _ = c.Get(ctx, "records")
	assert.False(t, hit)
	assert.NoError(t, c.Delete(ctx, "records"), "deleting a missing key is not an error")
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	now = now.Add(2 * time.Minute)
	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
	_, err = os.Stat(c.path("k"))
	assert.True(t, os.IsNotExist(err), "expired entry is removed")

	_, hit, _ = c.Get(ctx, "forever")
	assert.True(t, hit)
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, os.WriteFile(c.path("k"), []byte("{not json"), 0644))

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	var out []string
	assert.ErrorIs(t, GetJSON(ctx, c, "missing", &out), ErrCacheMiss)

	require.NoError(t, SetJSON(ctx, c, "list", []string{"a", "b"}, 0))
	require.NoError(t, GetJSON(ctx, c, "list", &out))
	assert.Equal(t, []string{"a", "b"}, out)

	require.NoError(t, c.Set(ctx, "bad", []byte("nope"), 0))
	assert.ErrorIs(t, GetJSON(ctx, c, "bad", &out), ErrCacheMiss)
	_, hit, _ := c.Get(ctx, "bad")
	assert.False(t, hit, "undecodable payload is dropped")
}

func TestKeyAndHash(t *testing.T) {
	assert.Len(t, Hash([]byte("hello")), 64)
	assert.Equal(t, Hash([]byte("hello")), Hash([]byte("hello")))

	k1 := Key("genai", "gemini-2.5-flash", "prompt")
	k2 := Key("genai", "gemini-2.5-pro", "prompt")
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, "genai:", k1[:6])
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	c, err := New(ctx, config.CacheConfig{Kind: config.CacheNone})
	require.NoError(t, err)
	assert.IsType(t, &NullCache{}, c)

	c, err = New(ctx, config.CacheConfig{Kind: config.CacheFile, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileCache{}, c)

	_, err = New(ctx, config.CacheConfig{Kind: "memcached"})
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)

	_, err = NewRedisCache(ctx, RedisConfig{})
	assert.Error(t, err)
}
