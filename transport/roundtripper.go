package transport

import (
	"context"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/bearer/token"
	"github.com/viant/bearer/whitelist"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultHeaderName = "Authorization"
	DefaultAuthScheme = "Bearer "
)

// RoundTripper attaches a bearer token to outgoing requests before delegating to the wrapped transport.
type RoundTripper struct {
	transport         http.RoundTripper
	tokenGetter       token.Getter
	headerName        string
	authScheme        string
	whitelist         whitelist.List
	whitelistSet      bool
	predicate         whitelist.Predicate
	throwNoTokenError bool
	skipWhenExpired   bool
	checker           token.Checker
	resolveTimeout    time.Duration
	logger            *slog.Logger
	registerer        prometheus.Registerer
	metrics           *metrics
}

// New creates a RoundTripper; a token getter is required and the two whitelist mechanisms are mutually exclusive.
func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport:  http.DefaultTransport,
		headerName: DefaultHeaderName,
		authScheme: DefaultAuthScheme,
		checker:    &token.Helper{},
	}
	for _, opt := range options {
		opt(ret)
	}

	if ret.tokenGetter == nil {
		return nil, ErrMissingTokenGetter
	}
	if ret.whitelistSet && ret.predicate != nil {
		return nil, ErrConflictingWhitelist
	}
	if ret.whitelistSet {
		ret.predicate = ret.whitelist.Predicate()
	}
	if ret.predicate == nil {
		ret.predicate = whitelist.Always()
	}
	if ret.headerName == "" {
		ret.headerName = DefaultHeaderName
	}
	if ret.transport == nil {
		ret.transport = http.DefaultTransport
	}
	if ret.checker == nil {
		ret.checker = &token.Helper{}
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.registerer != nil {
		var err error
		if ret.metrics, err = newMetrics(ret.registerer); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// HeaderName returns the header the token is written to
func (r *RoundTripper) HeaderName() string {
	return r.headerName
}

// RoundTrip forwards the request chosen by Decide to the wrapped transport exactly once.
// req is never modified; on error nothing is forwarded.
func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	next, outcome, err := r.Decide(req)
	r.observe(req, outcome)
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	return r.transport.RoundTrip(next)
}

// Decide returns the request to forward and how it was derived from req.
// req itself is returned when nothing is injected and is never modified.
func (r *RoundTripper) Decide(req *http.Request) (*http.Request, Outcome, error) {
	ctx := req.Context()
	if r.resolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.resolveTimeout)
		defer cancel()
	}

	tok, err := r.token(ctx)
	if err != nil {
		return nil, OutcomeError, fmt.Errorf("failed to resolve token: %w", err)
	}
	if tok == "" {
		if r.throwNoTokenError {
			return nil, OutcomeError, &MissingTokenError{}
		}
		return req, OutcomeNoToken, nil
	}

	if r.skipWhenExpired && r.checker.IsExpired(tok) {
		return req.Clone(req.Context()), OutcomeExpired, nil
	}

	whitelisted, err := r.predicate(req.WithContext(ctx)).Await(ctx)
	if err != nil {
		return nil, OutcomeError, fmt.Errorf("failed to evaluate whitelist: %w", err)
	}
	if !whitelisted {
		return req, OutcomeNotWhitelisted, nil
	}

	authorized := req.Clone(req.Context())
	if authorized.Header == nil {
		authorized.Header = make(http.Header)
	}
	authorized.Header.Set(r.headerName, r.authScheme+tok)
	return authorized, OutcomeAttached, nil
}

func (r *RoundTripper) token(ctx context.Context) (string, error) {
	if tok, ok := contextToken(ctx); ok {
		return tok, nil
	}
	return r.tokenGetter(ctx).Await(ctx)
}

func (r *RoundTripper) observe(req *http.Request, outcome Outcome) {
	if r.metrics != nil {
		r.metrics.requests.WithLabelValues(string(outcome)).Inc()
	}
	host := ""
	if req.URL != nil {
		host = req.URL.Host
	}
	r.logger.Debug("bearer transport decision",
		"outcome", string(outcome),
		"method", req.Method,
		"host", host,
	)
}
