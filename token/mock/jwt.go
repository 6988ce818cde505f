package mock

import (
	"github.com/golang-jwt/jwt/v5"
	"time"
)

// Secret signs every mock token
var Secret = []byte("mock-secret")

// NewJWT creates a signed HS256 token for subject expiring at expiry
func NewJWT(subject string, expiry time.Time) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": "mock",
		"sub": subject,
		"exp": expiry.Unix(),
		"iat": now.Unix(),
	}
	return sign(claims)
}

// NewJWTWithoutExpiry creates a signed token that has no exp claim
func NewJWTWithoutExpiry(subject string) (string, error) {
	return sign(jwt.MapClaims{"iss": "mock", "sub": subject})
}

// MustJWT is like NewJWT but panics on error
func MustJWT(subject string, expiry time.Time) string {
	ret, err := NewJWT(subject, expiry)
	if err != nil {
		panic(err)
	}
	return ret
}

func sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(Secret)
}
