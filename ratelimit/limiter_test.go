package ratelimit

import (
	"errors"
	"testing"
	"time"

	"github.com/agglayer/aggkit-prover/common"
	"github.com/stretchr/testify/require"
)

func setNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := common.TimeProvider
	common.TimeProvider = func() time.Time { return now }
	t.Cleanup(func() { common.TimeProvider = prev })
}

func TestLimiterSendTx(t *testing.T) {
	now := time.Now()
	setNow(t, now)

	cfg := Config{SendTx: Limited(2, time.Hour)}.
		WithSendTxOverride(1, Unlimited()).
		WithSendTxOverride(2, Limited(1, time.Minute))
	sut := NewLimiter(cfg)

	for i := 0; i < 10; i++ {
		require.NoError(t, sut.SendTx(1))
	}

	require.NoError(t, sut.SendTx(2))
	err := sut.SendTx(2)
	require.ErrorIs(t, err, ErrRateLimited)
	var limitedErr *LimitedError
	require.True(t, errors.As(err, &limitedErr))
	require.Equal(t, uint32(2), limitedErr.NetworkID)
	require.Equal(t, time.Minute, limitedErr.RetryAfter)

	// other networks share the default but not the window
	require.NoError(t, sut.SendTx(3))
	require.NoError(t, sut.SendTx(3))
	require.ErrorIs(t, sut.SendTx(3), ErrRateLimited)
	require.NoError(t, sut.SendTx(4))

	setNow(t, now.Add(time.Minute))
	require.NoError(t, sut.SendTx(2))
	require.ErrorIs(t, sut.SendTx(3), ErrRateLimited)

	setNow(t, now.Add(time.Hour))
	require.NoError(t, sut.SendTx(3))
}

func TestLimiterZeroAllowance(t *testing.T) {
	sut := NewLimiter(Config{SendTx: Limited(0, 2*time.Minute)})

	err := sut.SendTx(5)
	require.ErrorIs(t, err, ErrRateLimited)
	require.ErrorContains(t, err, "network 5 rate limited (0 per 2m0s)")
}
