package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/agenda-api/internal/authz"
)

var ErrInvalidToken = errors.New("auth: invalid token")

// Claims carries the identity asserted by the token issuer.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for the given identity.
func Sign(secret string, id authz.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifies an HS256 token and extracts the identity.
func Parse(secret, tokenString string) (authz.Identity, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return authz.Identity{}, ErrInvalidToken
	}

	if claims.Subject == "" || !authz.ValidRole(claims.Role) {
		return authz.Identity{}, ErrInvalidToken
	}

	return authz.Identity{UserID: claims.Subject, Role: claims.Role}, nil
}
