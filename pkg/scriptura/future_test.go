package scriptura_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptura-io/scriptura-client/pkg/scriptura"
)

func TestFuture_Resolves(t *testing.T) {
	t.Parallel()

	future := scriptura.NewFuture(func() (scriptura.Result[int], error) {
		return scriptura.Ok(42), nil
	})

	result, err := future.Wait(context.Background())
	require.NoError(t, err)
	require.True(t, result.IsOk())
	assert.Equal(t, 42, result.Value())
}

func TestFuture_PropagatesTransportError(t *testing.T) {
	t.Parallel()

	transportErr := &scriptura.ServerError{StatusCode: 502}

	future := scriptura.NewFuture(func() (scriptura.Result[int], error) {
		return scriptura.Result[int]{}, transportErr
	})

	_, err := future.Wait(context.Background())
	require.Error(t, err)
	assert.True(t, scriptura.IsServer(err))
}

func TestFuture_WaitIsRepeatable(t *testing.T) {
	t.Parallel()

	future := scriptura.NewFuture(func() (scriptura.Result[string], error) {
		return scriptura.Ok("once"), nil
	})

	ctx := context.Background()

	first, err := future.Wait(ctx)
	require.NoError(t, err)

	second, err := future.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFuture_WaitCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	future := scriptura.NewFuture(func() (scriptura.Result[int], error) {
		<-release

		return scriptura.Ok(1), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := future.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFuture_Done(t *testing.T) {
	t.Parallel()

	future := scriptura.NewFuture(func() (scriptura.Result[int], error) {
		return scriptura.Result[int]{}, errors.New("boom")
	})

	select {
	case <-future.Done():
	case <-time.After(time.Second):
		t.Fatal("future did not complete")
	}

	_, err := future.Wait(context.Background())
	require.Error(t, err)
}
