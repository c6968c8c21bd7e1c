package travel

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestLoadFromRedis_RoundTrip(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	routes := []Route{
		{From: "Paris", To: "Versailles", Minutes: 25},
		{From: "Lyon", To: "Grenoble", Minutes: 70},
	}
	require.NoError(t, PublishToRedis(ctx, client, "", routes))

	p, err := LoadFromRedis(ctx, client, "")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	minutes, ok := p.GetTravelMinutes(loc("Grenoble"), loc("Lyon"))
	require.True(t, ok)
	assert.Equal(t, 70, minutes)
}

func TestLoadFromRedis_EmptyKeyGivesEmptyProvider(t *testing.T) {
	client := newTestRedis(t)

	p, err := LoadFromRedis(context.Background(), client, "missing")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}

func TestLoadFromRedis_MalformedMinutes(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	require.NoError(t, client.HSet(ctx, DefaultRedisKey, "paris|versailles", "soon").Err())

	_, err := LoadFromRedis(ctx, client, "")
	assert.Error(t, err)
}

func TestLoadFromRedis_MalformedField(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	require.NoError(t, client.HSet(ctx, DefaultRedisKey, "paris", "25").Err())

	_, err := LoadFromRedis(ctx, client, "")
	assert.Error(t, err)
}

func TestPublishToRedis_RejectsBadRoutes(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()

	err := PublishToRedis(ctx, client, "", []Route{{From: "", To: "Paris", Minutes: 10}})
	assert.Error(t, err)

	err = PublishToRedis(ctx, client, "", []Route{{From: "Lyon", To: "Paris", Minutes: -1}})
	assert.Error(t, err)
}

func TestPublishToRedis_NoRoutesIsNoOp(t *testing.T) {
	client := newTestRedis(t)
	assert.NoError(t, PublishToRedis(context.Background(), client, "", nil))
}
