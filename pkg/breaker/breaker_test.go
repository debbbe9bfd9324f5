package breaker

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()
	b := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		err := b.Call(func() error { return errBoom })
		require.ErrorIs(t, err, errBoom)
	}

	err := b.Call(func() error { return nil })
	require.ErrorIs(t, err, ErrOpen)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	t.Parallel()
	b := New(2, time.Minute)

	require.Error(t, b.Call(func() error { return errBoom }))
	require.NoError(t, b.Call(func() error { return nil }))
	require.Error(t, b.Call(func() error { return errBoom }))

	// still closed: the success in between reset the streak
	require.NoError(t, b.Call(func() error { return nil }))
}

func TestBreaker_ProbesAfterCooldown(t *testing.T) {
	t.Parallel()
	b := New(1, 10*time.Millisecond)

	require.Error(t, b.Call(func() error { return errBoom }))
	require.ErrorIs(t, b.Call(func() error { return nil }), ErrOpen)

	time.Sleep(20 * time.Millisecond)

	called := false
	require.NoError(t, b.Call(func() error { called = true; return nil }))
	require.True(t, called)
	require.NoError(t, b.Call(func() error { return nil }))
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	b := New(1, 10*time.Millisecond)

	require.Error(t, b.Call(func() error { return errBoom }))
	time.Sleep(20 * time.Millisecond)

	require.ErrorIs(t, b.Call(func() error { return errBoom }), errBoom)
	require.ErrorIs(t, b.Call(func() error { return nil }), ErrOpen)
}
