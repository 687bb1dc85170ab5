package ratelimiter

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

const (
	defaultRateLimitRPC = 200
)

// RPCRateLimiter caps the number of RPC requests dispatched per minute.
type RPCRateLimiter struct {
	rpcRequestCount uint64
	maxCount        uint64
	ticker          *time.Ticker
	shutdownCh      chan struct{}
}

// NewRPCRateLimiter creates a RateLimiter implementation for RPC calls using RateLimiterSetting
func NewRPCRateLimiter(setting RateLimiterSetting) (*RPCRateLimiter, error) {
	if setting.RequestCount == 0 {
		setting.RequestCount = defaultRateLimitRPC
	}
	return &RPCRateLimiter{
		rpcRequestCount: 0,
		maxCount:        uint64(setting.RequestCount),
		ticker:          time.NewTicker(time.Duration(1 * time.Minute)),
		shutdownCh:      make(chan struct{}, 1),
	}, nil
}

// IncRequestCount increaments the request count by 1
func (rateLimiter *RPCRateLimiter) IncRequestCount() {
	atomic.AddUint64(&rateLimiter.rpcRequestCount, 1)
}

// ResetRequestCount resets the request count to 0
func (rateLimiter *RPCRateLimiter) ResetRequestCount() {
	atomic.StoreUint64(&rateLimiter.rpcRequestCount, 0)
}

// Acquire checks if the request count has reached the maximum allocated quota per minute.
func (rateLimiter *RPCRateLimiter) Acquire() (bool, error) {
	select {
	case <-rateLimiter.shutdownCh:
		return false, fmt.Errorf("shutdown is called")
	default:
		if atomic.LoadUint64(&rateLimiter.rpcRequestCount) < rateLimiter.maxCount {
			rateLimiter.IncRequestCount()
			return true, nil
		}
		return false, fmt.Errorf("request quota of (%d) requests per min is exhausted for the interval", rateLimiter.maxCount)
	}
}

// Run starts the timer for reseting the request counter
func (rateLimiter *RPCRateLimiter) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			rateLimiter.Shutdown(ctx)
			return
		case <-rateLimiter.ticker.C:
			rateLimiter.ResetRequestCount()
		}
	}
}

// Shutdown triggers the shutdown of the RPCRateLimiter
func (rateLimiter *RPCRateLimiter) Shutdown(_ context.Context) {
	rateLimiter.shutdownCh <- struct{}{}
}
