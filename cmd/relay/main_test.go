package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAwaitStop(t *testing.T) {
	t.Run("Should return nil once the signal context is done", func(t *testing.T) {
		req := require.New(t)
		ctx, stop := context.WithCancel(context.Background())
		stop()

		req.NoError(awaitStop(ctx, stop, make(chan error), make(chan struct{})))
	})

	t.Run("Should stop the workers and wait for them on a server error", func(t *testing.T) {
		req := require.New(t)
		ctx, stop := context.WithCancel(context.Background())
		defer stop()

		// Given workers that only finish once ctx is cancelled
		supervised := make(chan struct{})
		var workersDone time.Time
		go func() {
			<-ctx.Done()
			time.Sleep(20 * time.Millisecond)
			workersDone = time.Now()
			close(supervised)
		}()
		errs := make(chan error, 1)
		errs <- fmt.Errorf("address already in use")

		// When
		err := awaitStop(ctx, stop, errs, supervised)

		// Then the error comes back after the workers are gone
		req.ErrorContains(err, "address already in use")
		req.ErrorIs(ctx.Err(), context.Canceled)
		req.False(workersDone.IsZero())
	})
}
