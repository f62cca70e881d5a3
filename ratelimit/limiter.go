package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/agglayer/aggkit-prover/common"
)

// ErrRateLimited is matched by every *LimitedError
var ErrRateLimited = errors.New("rate limited")

// LimitedError is returned when a network exhausted its allowance.
type LimitedError struct {
	NetworkID  uint32
	Limit      TimeRateLimit
	RetryAfter time.Duration
}

func (e *LimitedError) Error() string {
	return fmt.Sprintf("network %d rate limited (%s), retry after %s", e.NetworkID, e.Limit, e.RetryAfter)
}

func (e *LimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

// Limiter keeps a sliding window per network. It is safe for concurrent use.
type Limiter struct {
	cfg Config

	mu       sync.Mutex
	networks map[uint32]*common.RateLimit
}

func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:      cfg,
		networks: make(map[uint32]*common.RateLimit),
	}
}

// SendTx registers a sendTx call for networkID, or returns a *LimitedError
// without registering it when the window is full.
func (l *Limiter) SendTx(networkID uint32) error {
	limit := l.cfg.ConfigFor(networkID)
	if limit.Unlimited {
		return nil
	}
	if limit.MaxPerInterval == 0 {
		return &LimitedError{NetworkID: networkID, Limit: limit, RetryAfter: limit.TimeInterval.Duration}
	}
	if wait := l.rateLimitFor(networkID, limit).Call("", false); wait != nil {
		return &LimitedError{NetworkID: networkID, Limit: limit, RetryAfter: *wait}
	}
	return nil
}

func (l *Limiter) rateLimitFor(networkID uint32, limit TimeRateLimit) *common.RateLimit {
	l.mu.Lock()
	defer l.mu.Unlock()
	rl, ok := l.networks[networkID]
	if !ok {
		rl = common.NewRateLimit(common.NewRateLimitConfig(int(limit.MaxPerInterval), limit.TimeInterval.Duration))
		l.networks[networkID] = rl
	}
	return rl
}
