package token

import (
	"context"
	"fmt"
	"github.com/viant/bearer/future"
	"golang.org/x/oauth2"
)

// Getter supplies the token for a request, an empty value means no token is available.
type Getter func(ctx context.Context) *future.Future[string]

// Static returns a getter that always yields token
func Static(token string) Getter {
	return func(ctx context.Context) *future.Future[string] {
		return future.Resolved(token)
	}
}

// Func returns a getter backed by a synchronous function
func Func(fn func() string) Getter {
	return func(ctx context.Context) *future.Future[string] {
		return future.Resolved(fn())
	}
}

// Async returns a getter that resolves the token on its own goroutine
func Async(fn func(ctx context.Context) (string, error)) Getter {
	return func(ctx context.Context) *future.Future[string] {
		return future.Go(func() (string, error) {
			return fn(ctx)
		})
	}
}

// FromTokenSource adapts an oauth2.TokenSource, the access token of the returned token is used.
func FromTokenSource(source oauth2.TokenSource) Getter {
	return func(ctx context.Context) *future.Future[string] {
		return future.Go(func() (string, error) {
			tok, err := source.Token()
			if err != nil {
				return "", fmt.Errorf("failed to get token from token source: %w", err)
			}
			if tok == nil {
				return "", nil
			}
			return tok.AccessToken, nil
		})
	}
}
