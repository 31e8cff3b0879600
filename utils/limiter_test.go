package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiterBurstPerKey(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLimiter(2)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other clients have their own bucket")

	l.Reset()
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok)
}

func TestConnectRedisFailsFast(t *testing.T) {
	_, err := ConnectRedis(context.Background(), "127.0.0.1:1", "")
	assert.Error(t, err)
}
