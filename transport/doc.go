// Package transport implements an http.RoundTripper that attaches a bearer token to
// outgoing requests.
//
// For every request the RoundTripper resolves a token, optionally skips expired tokens,
// evaluates the destination whitelist and forwards exactly one request to the wrapped
// transport. The caller's request is never modified; when a header is injected it is set
// on a clone.
//
//	rt, err := transport.New(
//		transport.WithTokenGetter(token.Static(accessToken)),
//		transport.WithWhitelistedDomains(whitelist.List{whitelist.Host(whitelist.Literal("api.example.com"))}),
//		transport.WithSkipWhenExpired(true),
//	)
//	client := &http.Client{Transport: rt}
package transport
