package whitelist

import (
	"context"
	"github.com/viant/bearer/future"
	"net/http"
)

// Predicate decides whether a token should be attached to the request
type Predicate func(req *http.Request) *future.Future[bool]

// Always whitelists every request
func Always() Predicate {
	return func(req *http.Request) *future.Future[bool] {
		return future.Resolved(true)
	}
}

// Sync adapts a synchronous decision function
func Sync(fn func(req *http.Request) bool) Predicate {
	return func(req *http.Request) *future.Future[bool] {
		return future.Resolved(fn(req))
	}
}

// Async runs fn on its own goroutine with the request context
func Async(fn func(ctx context.Context, req *http.Request) (bool, error)) Predicate {
	return func(req *http.Request) *future.Future[bool] {
		return future.Go(func() (bool, error) {
			return fn(req.Context(), req)
		})
	}
}

// Stream uses the first value pushed on the channel returned by fn
func Stream(fn func(req *http.Request) <-chan bool) Predicate {
	return func(req *http.Request) *future.Future[bool] {
		return future.FromChan(fn(req))
	}
}
