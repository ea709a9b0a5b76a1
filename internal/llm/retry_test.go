package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noSleep records the waits instead of sleeping.
func noSleep(r *retrying) *[]time.Duration {
	var waits []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return &waits
}

var testRetry = RetryConfig{MaxAttempts: 3, InitialWait: time.Second, MaxWait: 10 * time.Second, Multiplier: 2}

func TestRetry(t *testing.T) {
	ok := Reply{Content: json.RawMessage(`{}`)}
	down := Reply{Err: &Error{Provider: "p", Kind: ErrUnavailable}}
	invalid := Reply{Err: &Error{Provider: "p", Kind: ErrInvalidOutput}}

	tests := []struct {
		name    string
		replies []Reply
		calls   int
		wantErr error
	}{
		{"first try", []Reply{ok}, 1, nil},
		{"transient then ok", []Reply{down, down, ok}, 3, nil},
		{"gives up", []Reply{down, down, down, ok}, 3, ErrUnavailable},
		{"invalid once", []Reply{invalid, ok}, 2, nil},
		{"invalid twice", []Reply{invalid, invalid, ok}, 2, ErrInvalidOutput},
		{"truncated", []Reply{{Err: &Error{Kind: ErrTruncated}}, ok}, 1, ErrTruncated},
		{"rejected", []Reply{{Err: &Error{Kind: ErrRejected}}, ok}, 1, ErrRejected},
		{"canceled", []Reply{{Err: context.Canceled}, ok}, 1, context.Canceled},
		{"plain error", []Reply{{Err: errors.New("reset by peer")}, ok}, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := NewScripted(tt.replies...)
			r := withRetry(inner, testRetry, 0)
			noSleep(r)

			_, err := r.Generate(context.Background(), Request{})
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.calls, inner.Calls())
		})
	}
}

func TestRetry_Waits(t *testing.T) {
	inner := NewScripted(
		Reply{Err: &Error{Kind: ErrRateLimited, RetryAfter: 30 * time.Second}},
		Reply{Err: &Error{Kind: ErrUnavailable}},
		Reply{Content: json.RawMessage(`{}`)},
	)
	r := withRetry(inner, testRetry, 0)
	waits := noSleep(r)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, *waits, 2)
	assert.Equal(t, 30*time.Second, (*waits)[0])
	// Second attempt: 1s * 2 with ±20% jitter.
	assert.InDelta(t, float64(2*time.Second), float64((*waits)[1]), float64(400*time.Millisecond))
}

func TestRetry_WaitCapped(t *testing.T) {
	r := withRetry(NewScripted(), testRetry, 0)
	for range 20 {
		d := r.wait(10, errors.New("x"))
		assert.LessOrEqual(t, d, 12*time.Second)
		assert.GreaterOrEqual(t, d, 8*time.Second)
	}
}

func TestRetry_Timeout(t *testing.T) {
	inner := NewScripted(Reply{Err: &Error{Kind: ErrUnavailable}}, Reply{Content: json.RawMessage(`{}`)})
	r := withRetry(inner, testRetry, time.Nanosecond)
	// The real sleep sees the expired deadline.
	_, err := r.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, inner.Calls())
}
