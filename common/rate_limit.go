package common

import (
	"fmt"
	"sync"
	"time"

	"github.com/agglayer/aggkit-prover/config/types"
	"github.com/agglayer/aggkit-prover/log"
)

var (
	TimeProvider = time.Now
)

// RateLimitConfig is a sliding window of at most NumRequests calls per Interval.
// A zero value disables the limit.
type RateLimitConfig struct {
	NumRequests int            `mapstructure:"NumRequests"`
	Interval    types.Duration `mapstructure:"Interval"`
}

func NewRateLimitConfig(numRequests int, period time.Duration) RateLimitConfig {
	return RateLimitConfig{
		NumRequests: numRequests,
		Interval:    types.Duration{Duration: period},
	}
}

func (r RateLimitConfig) String() string {
	if !r.Enabled() {
		return "RateLimitConfig{Unlimited}"
	}
	return fmt.Sprintf("RateLimitConfig{NumRequests: %d, Period: %s}", r.NumRequests, r.Interval)
}

func (r RateLimitConfig) Enabled() bool {
	return r.NumRequests > 0 && r.Interval.Duration > 0
}

// RateLimit is safe for concurrent use.
type RateLimit struct {
	cfg RateLimitConfig
	mu  sync.Mutex
	// Calls realized in the current period
	bucket []time.Time
}

func NewRateLimit(cfg RateLimitConfig) *RateLimit {
	return &RateLimit{
		cfg: cfg,
	}
}

func (r *RateLimit) String() string {
	if r == nil {
		return "RateLimit{nil}"
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("RateLimit{cfg: %s, bucket len: %v}", r.cfg, len(r.bucket))
}

// Call registers a call. If the limit is reached it returns the time to wait
// for the next slot; when allowToSleep is set it sleeps that time instead and
// the call is registered afterwards.
func (r *RateLimit) Call(msg string, allowToSleep bool) *time.Duration {
	if r == nil || !r.cfg.Enabled() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var returnSleepTime *time.Duration
	now := TimeProvider()
	r.cleanOutdatedCalls(now)
	if len(r.bucket) >= r.cfg.NumRequests {
		sleepTime := r.cfg.Interval.Duration - now.Sub(r.bucket[0])
		if !allowToSleep {
			return &sleepTime
		}
		if msg != "" {
			log.Debugf("Rate limit reached, sleeping for %s for %s", sleepTime, msg)
		}
		time.Sleep(sleepTime)
		returnSleepTime = &sleepTime
		now = TimeProvider()
		r.cleanOutdatedCalls(now)
	}
	r.bucket = append(r.bucket, now)
	return returnSleepTime
}

func (r *RateLimit) cleanOutdatedCalls(now time.Time) {
	for i, call := range r.bucket {
		if now.Sub(call) < r.cfg.Interval.Duration {
			r.bucket = r.bucket[i:]
			return
		}
	}
	r.bucket = []time.Time{}
}
