// Package mock mints signed JWTs with a chosen expiry for tests.
package mock
