package retry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/errors"
	"github.com/mcavallo/foundry-vtt-wfrp4e-more-subspecies/internal/pkg/retry"
)

func TestWaitUntil_ImmediateSuccess(t *testing.T) {
	calls := 0
	err := retry.WaitUntil(context.Background(), &retry.Config{Interval: time.Hour, MaxAttempts: 3}, func(context.Context) bool {
		calls++
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWaitUntil_EventualSuccess(t *testing.T) {
	calls := 0
	err := retry.WaitUntil(context.Background(), &retry.Config{Interval: time.Millisecond, MaxAttempts: 5}, func(context.Context) bool {
		calls++
		return calls == 3
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWaitUntil_ExhaustsBudget(t *testing.T) {
	calls := 0
	err := retry.WaitUntil(context.Background(), &retry.Config{Interval: time.Millisecond, MaxAttempts: 4}, func(context.Context) bool {
		calls++
		return false
	})

	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, 4, calls)
}

func TestWaitUntil_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := retry.WaitUntil(ctx, &retry.Config{Interval: time.Hour, MaxAttempts: 10}, func(context.Context) bool {
		return false
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitUntil_InvalidConfig(t *testing.T) {
	err := retry.WaitUntil(context.Background(), &retry.Config{}, func(context.Context) bool { return true })

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
