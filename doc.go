// Package bearer attaches bearer tokens to outgoing HTTP requests.
//
// The package is an umbrella over the transport, whitelist, token and config packages.
// NewClient returns an http.Client whose transport resolves a token per request,
// optionally skips expired tokens and only injects the header for whitelisted
// destinations:
//
//	client, err := bearer.NewClient(ctx, &bearer.ClientOptions{ConfigURL: "bearer.yaml"},
//		token.FromTokenSource(tokenSource))
//
// A YAML configuration looks like
//
//	headerName: Authorization
//	authScheme: "Bearer "
//	skipWhenExpired: true
//	whitelistedDomains:
//	  - api.example.com
//	  - regexp: '\.internal\.example\.com$'
//	  - domain: auth.example.com
//	    paths: [/login, /refresh]
//
// Requests to relative URLs are always treated as whitelisted.
package bearer
