package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRPCRateLimiter(t *testing.T) {
	setting := RateLimiterSetting{
		RequestCount: 100,
	}
	rpcRateLimiter, err := NewRPCRateLimiter(setting)
	assert.NoError(t, err)
	assert.Equal(t, uint64(setting.RequestCount), rpcRateLimiter.maxCount)
	assert.Equal(t, uint64(0), rpcRateLimiter.rpcRequestCount)
}

func TestNewRPCRateLimiterDefaultRequestCount(t *testing.T) {
	setting := RateLimiterSetting{}
	rpcRateLimiter, err := NewRPCRateLimiter(setting)
	assert.NoError(t, err)
	assert.Equal(t, uint64(defaultRateLimitRPC), rpcRateLimiter.maxCount)
	assert.Equal(t, uint64(0), rpcRateLimiter.rpcRequestCount)
}

func TestIncRequestCount(t *testing.T) {
	setting := RateLimiterSetting{
		RequestCount: 100,
	}
	rpcRateLimiter, err := NewRPCRateLimiter(setting)
	assert.NoError(t, err)
	requestCountBeforeInc := rpcRateLimiter.rpcRequestCount
	rpcRateLimiter.IncRequestCount()
	requestCountAfterInc := rpcRateLimiter.rpcRequestCount
	assert.Equal(t, requestCountBeforeInc+1, requestCountAfterInc)
}

func TestResetRequestCount(t *testing.T) {
	setting := RateLimiterSetting{
		RequestCount: 100,
	}
	rpcRateLimiter, err := NewRPCRateLimiter(setting)
	assert.NoError(t, err)
	rpcRateLimiter.IncRequestCount()
	rpcRateLimiter.ResetRequestCount()
	assert.Equal(t, uint64(0), rpcRateLimiter.rpcRequestCount)
}

func TestAcquire(t *testing.T) {
	setting := RateLimiterSetting{
		RequestCount: 1,
	}
	rpcRateLimiter, err := NewRPCRateLimiter(setting)
	assert.NoError(t, err)

	// Should allow 1 request
	ok, err := rpcRateLimiter.Acquire()
	assert.Equal(t, true, ok)
	assert.NoError(t, err)

	// Quota exhausted
	ok, err = rpcRateLimiter.Acquire()
	assert.Equal(t, false, ok)
	assert.Error(t, err)
}

func TestAcquireAfterShutdown(t *testing.T) {
	setting := RateLimiterSetting{
		RequestCount: 1,
	}
	rpcRateLimiter, err := NewRPCRateLimiter(setting)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go rpcRateLimiter.Run(ctx)
	cancel()
	time.Sleep(10 * time.Millisecond)

	ok, err := rpcRateLimiter.Acquire()
	assert.Equal(t, false, ok)
	assert.Error(t, err)
}
