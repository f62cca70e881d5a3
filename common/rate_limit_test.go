package common_test

import (
	"testing"
	"time"

	"github.com/agglayer/aggkit-prover/common"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	now := time.Now()
	common.TimeProvider = func() time.Time {
		return now
	}
	sut := common.NewRateLimit(common.NewRateLimitConfig(2, time.Second))
	require.Nil(t, sut.Call("test", false))
	require.Nil(t, sut.Call("test", false))
	sleepTime := sut.Call("test", false)
	require.NotNil(t, sleepTime)
	require.Equal(t, time.Second, *sleepTime)

	common.TimeProvider = func() time.Time {
		return now.Add(time.Second * 2)
	}
	require.Nil(t, sut.Call("test", false))
	require.Nil(t, sut.Call("test", false))
}

func TestRateLimitSleepTime(t *testing.T) {
	now := time.Now()
	common.TimeProvider = func() time.Time {
		return now
	}
	sut := common.NewRateLimit(common.NewRateLimitConfig(2, time.Minute))
	require.Nil(t, sut.Call("test", false))
	common.TimeProvider = func() time.Time {
		return now.Add(time.Second * 55)
	}
	require.Nil(t, sut.Call("test", false))
	sleepTime := sut.Call("test", false)
	require.NotNil(t, sleepTime)
	require.Equal(t, time.Second*5, *sleepTime)
}

func TestRateLimitDisabled(t *testing.T) {
	now := time.Now()
	common.TimeProvider = func() time.Time {
		return now
	}
	sut := common.NewRateLimit(common.NewRateLimitConfig(0, time.Minute))
	for i := 1; i <= 1000; i++ {
		require.Nil(t, sut.Call("test", false))
	}
	require.Equal(t, "RateLimitConfig{Unlimited}", common.NewRateLimitConfig(0, time.Minute).String())
}

func TestRateLimitNil(t *testing.T) {
	var sut *common.RateLimit
	require.Nil(t, sut.Call("test", false))
	require.Equal(t, "RateLimit{nil}", sut.String())
}
