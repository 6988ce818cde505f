package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/bearer/token"
	"github.com/viant/bearer/whitelist"
	"log/slog"
	"net/http"
	"time"
)

type Option func(*RoundTripper)

// WithTransport sets the transport requests are forwarded to
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithTokenGetter sets the token supplier
func WithTokenGetter(getter token.Getter) Option {
	return func(t *RoundTripper) {
		t.tokenGetter = getter
	}
}

// WithHeaderName sets the header name, Authorization by default
func WithHeaderName(name string) Option {
	return func(t *RoundTripper) {
		t.headerName = name
	}
}

// WithAuthScheme sets the token prefix, "Bearer " by default; an empty scheme sends the raw token
func WithAuthScheme(scheme string) Option {
	return func(t *RoundTripper) {
		t.authScheme = scheme
	}
}

// WithWhitelistedDomains restricts token injection to matching destinations
func WithWhitelistedDomains(list whitelist.List) Option {
	return func(t *RoundTripper) {
		t.whitelist = list
		t.whitelistSet = true
	}
}

// WithWhitelistPredicate sets a custom destination predicate
func WithWhitelistPredicate(predicate whitelist.Predicate) Option {
	return func(t *RoundTripper) {
		t.predicate = predicate
	}
}

// WithThrowNoTokenError fails requests when no token is available
func WithThrowNoTokenError(flag bool) Option {
	return func(t *RoundTripper) {
		t.throwNoTokenError = flag
	}
}

// WithSkipWhenExpired forwards requests without a token when the token has expired
func WithSkipWhenExpired(flag bool) Option {
	return func(t *RoundTripper) {
		t.skipWhenExpired = flag
	}
}

// WithExpiryChecker sets expiry checker
func WithExpiryChecker(checker token.Checker) Option {
	return func(t *RoundTripper) {
		t.checker = checker
	}
}

// WithResolveTimeout bounds waiting for the token and the whitelist predicate
func WithResolveTimeout(timeout time.Duration) Option {
	return func(t *RoundTripper) {
		t.resolveTimeout = timeout
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}

// WithMetrics registers decision counters with registerer
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(t *RoundTripper) {
		t.registerer = registerer
	}
}
