package future_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ardbc/ardbc/internal/future"
)

func TestReadyThenWaitDeliversValue(t *testing.T) {
	comp, prod := future.New[int]()
	prod.Ready(42)

	v, err := comp.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestWaitThenReadyDeliversValue(t *testing.T) {
	comp, prod := future.New[string]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		prod.Ready("hello")
	}()

	v, err := comp.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "hello", v)
	<-done
}

func TestSecondReadyIsANoOp(t *testing.T) {
	comp, prod := future.New[int]()
	prod.Ready(1)
	prod.Ready(2)

	v, err := comp.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestWaitRespectsContextCancellation(t *testing.T) {
	comp, _ := future.New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := comp.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReadyAfterConsumerGivesUpDoesNotBlockOrPanic(t *testing.T) {
	comp, prod := future.New[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := comp.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.NotPanics(t, func() { prod.Ready(7) })
}
