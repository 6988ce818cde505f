package token

import (
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

// Checker reports whether a token has expired
type Checker interface {
	IsExpired(token string) bool
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(token string) bool

func (f CheckerFunc) IsExpired(token string) bool {
	return f(token)
}

// Helper decodes JWT claims without verifying the signature.
type Helper struct {
	// Offset in seconds, a token expiring within Offset from now is already treated as expired
	Offset int64
	// Now overrides the clock, time.Now is used when nil
	Now func() time.Time
}

// Decode returns the token claims
func (h *Helper) Decode(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return claims, nil
}

// ExpirationTime returns the exp claim, or nil when the token carries none.
func (h *Helper) ExpirationTime(token string) (*time.Time, error) {
	claims, err := h.Decode(token)
	if err != nil {
		return nil, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("failed to get expiration time: %w", err)
	}
	if exp == nil {
		return nil, nil
	}
	expiry := exp.Time
	return &expiry, nil
}

// IsExpired returns true when the token expires at or before now plus Offset.
// A token without exp never expires, a token that cannot be decoded is expired.
func (h *Helper) IsExpired(token string) bool {
	expiry, err := h.ExpirationTime(token)
	if err != nil {
		return true
	}
	if expiry == nil {
		return false
	}
	return !expiry.After(h.now().Add(time.Duration(h.Offset) * time.Second))
}

func (h *Helper) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
