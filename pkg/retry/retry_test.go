package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/storefront/pkg/retry"
)

var errTemporary = errors.New("temporary")

func TestDo(t *testing.T) {

	t.Run("SucceedsFirstAttempt", func(t *testing.T) {
		calls := 0
		err := retry.Do(t.Context(), retry.RetryConfig{MaxAttempts: 3}, func() error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		c := retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LineareBackoff(time.Millisecond),
		}
		err := retry.Do(t.Context(), c, func() error {
			calls++
			if calls < 3 {
				return errTemporary
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		calls := 0
		c := retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.LineareBackoff(time.Millisecond),
		}
		err := retry.Do(t.Context(), c, func() error {
			calls++
			return errTemporary
		})

		require.ErrorIs(t, err, errTemporary)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetryableStopsEarly", func(t *testing.T) {
		fatal := errors.New("fatal")
		calls := 0
		c := retry.RetryConfig{
			MaxAttempts: 5,
			Backoff:     retry.LineareBackoff(time.Millisecond),
			ShouldRetry: func(err error) bool { return !errors.Is(err, fatal) },
		}
		err := retry.Do(t.Context(), c, func() error {
			calls++
			return fatal
		})

		require.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := retry.Do(ctx, retry.RetryConfig{MaxAttempts: 3}, func() error {
			t.Fatal("fn must not run")
			return nil
		})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDoWithResult(t *testing.T) {

	t.Run("ReturnsResult", func(t *testing.T) {
		calls := 0
		c := retry.RetryConfig{
			MaxAttempts: 2,
			Backoff:     retry.LineareBackoff(time.Millisecond),
		}
		got, err := retry.DoWithResult(t.Context(), c, func() (int, error) {
			calls++
			if calls == 1 {
				return 0, errTemporary
			}
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("ZeroValueOnFailure", func(t *testing.T) {
		c := retry.RetryConfig{
			MaxAttempts: 2,
			Backoff:     retry.LineareBackoff(time.Millisecond),
		}
		got, err := retry.DoWithResult(t.Context(), c, func() (string, error) {
			return "partial", errTemporary
		})

		require.ErrorIs(t, err, errTemporary)
		assert.Empty(t, got)
	})
}
