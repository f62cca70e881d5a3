package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	type testCase struct {
		input    string
		expected time.Duration
	}
	tcs := []testCase{
		{input: "10s", expected: 10 * time.Second},
		{input: "1h20m", expected: 80 * time.Minute},
		{input: "1h 20min", expected: 4800 * time.Second},
		{input: "30min", expected: 30 * time.Minute},
		{input: "90s", expected: 90 * time.Second},
		{input: "2min", expected: 2 * time.Minute},
		{input: "2 min", expected: 2 * time.Minute},
		{input: "1 hour", expected: time.Hour},
		{input: "1day", expected: 24 * time.Hour},
		{input: "1h 30sec", expected: time.Hour + 30*time.Second},
	}

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalText([]byte(tc.input)))
			require.Equal(t, tc.expected, d.Duration)
		})
	}
}

func TestDurationUnmarshalInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "10 parsecs", "xd"} {
		var d Duration
		require.Error(t, d.UnmarshalText([]byte(input)), input)
	}
}

func TestDurationMarshalText(t *testing.T) {
	d := NewDuration(90 * time.Second)
	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1m30s", string(text))

	var parsed Duration
	require.NoError(t, parsed.UnmarshalText(text))
	require.Equal(t, d, parsed)
}
