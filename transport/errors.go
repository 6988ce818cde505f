package transport

import "errors"

var (
	// ErrMissingToken matches any *MissingTokenError
	ErrMissingToken = errors.New("could not get token from token getter")
	// ErrMissingTokenGetter is returned by New without WithTokenGetter
	ErrMissingTokenGetter = errors.New("token getter is required")
	// ErrConflictingWhitelist is returned by New when both whitelisted domains and a whitelist predicate are set
	ErrConflictingWhitelist = errors.New("whitelisted domains and whitelist predicate are mutually exclusive")
)

// MissingTokenError is returned when no token is available and the transport is configured to fail on it.
// The request is not forwarded.
type MissingTokenError struct{}

func (e *MissingTokenError) Error() string {
	return ErrMissingToken.Error()
}

func (e *MissingTokenError) Is(target error) bool {
	return target == ErrMissingToken
}
