package guard

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateConfirmRunsActionOnce(t *testing.T) {
	var gate Gate
	calls := 0

	err := gate.Request(func(ctx context.Context) error {
		calls++

		return nil
	}, "Delete service", "This cannot be undone")
	require.NoError(t, err)

	prompt, ok := gate.Pending()
	require.True(t, ok)
	assert.Equal(t, "Delete service", prompt.Title)

	require.NoError(t, gate.Confirm(context.Background()))
	assert.Equal(t, 1, calls)

	// A second confirm has nothing left to run.
	assert.ErrorIs(t, gate.Confirm(context.Background()), ErrNothingPending)
	assert.Equal(t, 1, calls)
}

func TestGateCancelDiscardsAction(t *testing.T) {
	var gate Gate
	calls := 0

	require.NoError(t, gate.Request(func(ctx context.Context) error {
		calls++

		return nil
	}, "Delete", "sure?"))

	gate.Cancel()

	_, ok := gate.Pending()
	assert.False(t, ok)
	assert.ErrorIs(t, gate.Confirm(context.Background()), ErrNothingPending)
	assert.Zero(t, calls)
}

func TestGateRejectsSecondRequestWhilePending(t *testing.T) {
	var gate Gate
	noop := func(ctx context.Context) error { return nil }

	require.NoError(t, gate.Request(noop, "first", ""))
	assert.ErrorIs(t, gate.Request(noop, "second", ""), ErrAlreadyPending)

	// After cancel the gate accepts a new request.
	gate.Cancel()
	assert.NoError(t, gate.Request(noop, "third", ""))
}

func TestGateConfirmPropagatesActionError(t *testing.T) {
	var gate Gate
	boom := errors.New("boom")

	require.NoError(t, gate.Request(func(ctx context.Context) error {
		return boom
	}, "Delete", ""))

	assert.ErrorIs(t, gate.Confirm(context.Background()), boom)

	// The gate clears even on failure; the caller must re-arm to retry.
	assert.ErrorIs(t, gate.Confirm(context.Background()), ErrNothingPending)
}

func TestGateCancelIdleIsNoop(t *testing.T) {
	var gate Gate
	gate.Cancel()

	_, ok := gate.Pending()
	assert.False(t, ok)
}
