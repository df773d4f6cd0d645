package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/madking-api/internal/redis"
)

func TestNewClient(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClusterClient(nil, nil)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, redis.Ping(context.Background(), client, time.Second))
}

func TestIsNil(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "missing").Result()
	assert.True(t, redis.IsNil(err))
	assert.True(t, redis.IsNil(goredis.Nil))
	assert.False(t, redis.IsNil(nil))
}
