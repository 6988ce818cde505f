// Package token defines how the transport obtains a bearer token and how it decides
// whether that token has expired.
//
// A Getter always returns a *future.Future so synchronous (Static, Func) and
// asynchronous (Async, FromTokenSource) suppliers are interchangeable. Helper is the
// default Checker; it reads the exp claim of a JWT and never verifies signatures.
package token
