package scriptura

import "context"

// Future is the pending outcome of an asynchronous endpoint call. The
// request is already in flight when a Future is handed out; Wait only
// observes completion.
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
	err    error
}

// NewFuture runs call on its own goroutine and returns a Future resolving to
// its outcome. Used by the async facade; applications normally receive
// Futures rather than construct them.
func NewFuture[T any](call func() (Result[T], error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.result, f.err = call()
	}()

	return f
}

// Wait blocks until the call completes or ctx is cancelled. On cancellation
// it returns ctx.Err(); the underlying request keeps the context it was
// started with, so cancelling that context also aborts the request itself.
// Wait may be called any number of times; every call yields the same
// outcome.
func (f *Future[T]) Wait(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero Result[T]

		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed when the call has completed. It lets
// callers select over several futures at once.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
