package future

import (
	"context"
	"errors"
)

// ErrNoValue is returned when a stream backed future closes without producing a value.
var ErrNoValue = errors.New("future: source closed without a value")

// Future represents a value that settles exactly once, either immediately or after asynchronous work.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) settle(value T, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Resolved returns a settled future holding value
func Resolved[T any](value T) *Future[T] {
	ret := newFuture[T]()
	ret.settle(value, nil)
	return ret
}

// Failed returns a settled future holding err
func Failed[T any](err error) *Future[T] {
	ret := newFuture[T]()
	var zero T
	ret.settle(zero, err)
	return ret
}

// Go runs fn on its own goroutine and settles with its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	ret := newFuture[T]()
	go func() {
		value, err := fn()
		ret.settle(value, err)
	}()
	return ret
}

// FromChan settles with the first value received on ch, or with ErrNoValue when ch closes first.
// A channel that never produces nor closes keeps the receiving goroutine alive.
func FromChan[T any](ch <-chan T) *Future[T] {
	ret := newFuture[T]()
	go func() {
		value, ok := <-ch
		if !ok {
			ret.settle(value, ErrNoValue)
			return
		}
		ret.settle(value, nil)
	}()
	return ret
}

// Done returns a channel closed once the future settles
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
