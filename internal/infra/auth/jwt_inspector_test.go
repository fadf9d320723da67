package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ExpiresAt(t *testing.T) {
	inspector := NewJWTInspector()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	got, ok := inspector.ExpiresAt(signToken(t, jwt.MapClaims{"sub": "user-1", "exp": exp.Unix()}))
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestJWTInspector_Expired(t *testing.T) {
	inspector := NewJWTInspector()
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "expired an hour ago",
			token: signToken(t, jwt.MapClaims{"sub": "user-1", "exp": now.Add(-time.Hour).Unix()}),
			want:  true,
		},
		{
			name:  "valid for an hour",
			token: signToken(t, jwt.MapClaims{"sub": "user-1", "exp": now.Add(time.Hour).Unix()}),
			want:  false,
		},
		{
			name:  "within clock skew",
			token: signToken(t, jwt.MapClaims{"sub": "user-1", "exp": now.Add(-5 * time.Second).Unix()}),
			want:  false,
		},
		{
			name:  "no exp claim",
			token: signToken(t, jwt.MapClaims{"sub": "user-1"}),
			want:  false,
		},
		{
			name:  "opaque token",
			token: "3f8a1c2e-opaque",
			want:  false,
		},
		{
			name:  "empty",
			token: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inspector.Expired(tt.token, now))
		})
	}
}

func TestJWTInspector_IgnoresSignature(t *testing.T) {
	inspector := NewJWTInspector()

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("a_different_secret_nobody_here_knows"))
	require.NoError(t, err)

	assert.True(t, inspector.Expired(other, time.Now()))
}
