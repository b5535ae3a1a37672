package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

func newRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, "test"), mr
}

func TestRedisCacheGetSet(t *testing.T) {
	c, mr := newRedisCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
	assert.True(t, mr.Exists("test:k"))

	mr.FastForward(2 * time.Minute)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestReadThroughLoadsOnceWithinTTL(t *testing.T) {
	c, mr := newRedisCache(t)
	ctx := context.Background()

	loads := 0
	load := func() (page, error) {
		loads++
		return page{Items: []string{"a", "b"}, Total: 2}, nil
	}
	var hits, misses int
	observe := func(_ string, hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	}

	first, err := ReadThrough(ctx, c, "artworks", "page=1", 5*time.Minute, observe, load)
	require.NoError(t, err)
	second, err := ReadThrough(ctx, c, "artworks", "page=1", 5*time.Minute, observe, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, loads)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)

	mr.FastForward(6 * time.Minute)
	_, err = ReadThrough(ctx, c, "artworks", "page=1", 5*time.Minute, observe, load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestReadThroughDoesNotCacheErrors(t *testing.T) {
	c, _ := newRedisCache(t)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := ReadThrough(ctx, c, "artists", "list", time.Minute, nil, func() (page, error) {
		return page{}, boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = c.Get(ctx, "artists:list")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestReadThroughSurvivesRedisOutage(t *testing.T) {
	c, mr := newRedisCache(t)
	mr.Close()

	got, err := ReadThrough(context.Background(), c, "artworks", "k", time.Minute, nil, func() (page, error) {
		return page{Total: 3}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Total)
}

func TestNopAlwaysMisses(t *testing.T) {
	var c Cache = Nop{}
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), time.Minute))
	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrMiss)
}
