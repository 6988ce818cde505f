package transport

import "context"

type contextTokenKey string

// ContextTokenKey carries a per request token that takes precedence over the token getter
const ContextTokenKey contextTokenKey = "bearerToken"

// WithContextToken returns ctx carrying token for a single request
func WithContextToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextTokenKey, token)
}

func contextToken(ctx context.Context) (string, bool) {
	if v := ctx.Value(ContextTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
