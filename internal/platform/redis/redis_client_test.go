package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_PASSWORD", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", cfg.Addr())
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 0, cfg.DB)
	assert.Equal(t, 3*time.Second, cfg.DialTimeout)
}

func TestLoadConfig_InvalidDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{})
	assert.Nil(t, rdb)
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	// ポート1は通常待ち受けがないため接続に失敗する
	cfg := Config{Host: "127.0.0.1", Port: "1", DialTimeout: 200 * time.Millisecond}
	rdb, err := NewRedisClient(context.Background(), cfg)
	assert.Nil(t, rdb)
	assert.Error(t, err)
}
