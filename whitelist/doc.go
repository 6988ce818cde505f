// Package whitelist decides which request destinations receive a bearer token.
//
// A List holds host entries and structured {domain, paths} entries; a structured entry
// matches when its domain matches and any one of its paths matches. Arbitrary decisions,
// including asynchronous or streamed ones, are expressed as a Predicate.
//
//	list := whitelist.List{
//		whitelist.Host(whitelist.Literal("api.example.com")),
//		whitelist.Domain(whitelist.Literal("auth.example.com"),
//			whitelist.Literal("/login"), whitelist.Literal("/refresh")),
//	}
package whitelist
