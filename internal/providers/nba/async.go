package nba

import "context"

// Result carries the outcome of one asynchronous call: either Value or Err is set, never both.
type Result[T any] struct {
	Value T
	Err   error
}

// Async runs fn in its own goroutine and delivers exactly one Result on the returned channel.
// The channel is buffered and closed after the single send.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		value, err := fn(ctx)
		if err != nil {
			var zero T
			out <- Result[T]{Value: zero, Err: err}
			return
		}
		out <- Result[T]{Value: value}
	}()
	return out
}
