package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRedisConfig(t *testing.T) {
	config := DefaultRedisConfig()

	assert.Equal(t, "localhost", config.Host)
	assert.Equal(t, 6379, config.Port)
	assert.Equal(t, 10, config.PoolSize)
	assert.Equal(t, 3, config.MaxRetries)
	assert.Equal(t, 5*time.Second, config.DialTimeout)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	config := DefaultRedisConfig()
	config.Port = 1 // nothing listens here
	config.DialTimeout = 200 * time.Millisecond
	config.MaxRetries = 0

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, config)
	assert.Error(t, err)
	assert.Nil(t, client)
}
