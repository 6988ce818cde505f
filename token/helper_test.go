package token

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bearer/token/mock"
	"testing"
	"time"
)

func TestHelper_IsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	noExpiry, err := mock.NewJWTWithoutExpiry("user")
	require.NoError(t, err)

	var testCases = []struct {
		description string
		token       string
		offset      int64
		expect      bool
	}{
		{description: "valid", token: mock.MustJWT("user", now.Add(time.Hour)), expect: false},
		{description: "expired", token: mock.MustJWT("user", now.Add(-time.Minute)), expect: true},
		{description: "expires now", token: mock.MustJWT("user", now), expect: true},
		{description: "within offset", token: mock.MustJWT("user", now.Add(30*time.Second)), offset: 60, expect: true},
		{description: "beyond offset", token: mock.MustJWT("user", now.Add(2*time.Minute)), offset: 60, expect: false},
		{description: "no exp claim", token: noExpiry, expect: false},
		{description: "not a jwt", token: "opaque-token", expect: true},
	}

	for _, testCase := range testCases {
		helper := &Helper{Offset: testCase.offset, Now: func() time.Time { return now }}
		assert.Equal(t, testCase.expect, helper.IsExpired(testCase.token), testCase.description)
	}
}

func TestHelper_Decode(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	helper := &Helper{}
	claims, err := helper.Decode(mock.MustJWT("alice", expiry))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["sub"])

	actual, err := helper.ExpirationTime(mock.MustJWT("alice", expiry))
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.True(t, expiry.Equal(*actual))

	_, err = helper.Decode("a.b")
	assert.Error(t, err)
}

func TestCheckerFunc(t *testing.T) {
	var checker Checker = CheckerFunc(func(token string) bool { return token == "old" })
	assert.True(t, checker.IsExpired("old"))
	assert.False(t, checker.IsExpired("new"))
}
