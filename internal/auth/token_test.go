package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-api/internal/authz"
)

func TestSignAndParse(t *testing.T) {
	want := authz.Identity{UserID: "1b4e28ba-2fa1-11d2-883f-0016d3cca427", Role: "PROFESSIONAL"}

	tok, err := Sign("secret", want, time.Hour)
	require.NoError(t, err)

	got, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseRejects(t *testing.T) {
	good := authz.Identity{UserID: "u-1", Role: "CLIENT"}

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := Sign("secret", good, time.Hour)
		require.NoError(t, err)
		_, err = Parse("other", tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := Sign("secret", good, -time.Minute)
		require.NoError(t, err)
		_, err = Parse("secret", tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		tok, err := Sign("secret", authz.Identity{UserID: "u-1", Role: "owner"}, time.Hour)
		require.NoError(t, err)
		_, err = Parse("secret", tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok, err := Sign("secret", authz.Identity{Role: "CLIENT"}, time.Hour)
		require.NoError(t, err)
		_, err = Parse("secret", tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other algorithm", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"sub":  "u-1",
			"role": "CLIENT",
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = Parse("secret", tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Parse("secret", "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
