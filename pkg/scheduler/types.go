package scheduler

import (
	"context"
)

type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

type Future[T any] struct {
	input  chan Result[T]
	cancel context.CancelFunc
}

func NewFuture[T any](input chan Result[T], cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

func (f *Future[T]) C() <-chan Result[T] {
	return f.input
}

// Stop cancels the context of the work. The result is still delivered.
func (f *Future[T]) Stop() {
	f.cancel()
}

// Await blocks until the work finishes. If ctx ends first the work is
// stopped and Await still waits for it to return, so the result reflects
// how the work reacted to cancellation.
func (f *Future[T]) Await(ctx context.Context) Result[T] {
	select {
	case r := <-f.input:
		f.cancel()
		return r
	case <-ctx.Done():
		f.cancel()
		r := <-f.input
		if r.Err == nil {
			r.Err = ctx.Err()
		}
		return r
	}
}
