// Package auth mints and verifies the JWT session tokens issued on signup
// and login. Tokens are stateless: validity is signature plus expiry only,
// there is no server-side session store to invalidate.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Tokens are valid for 7 days from issuance.
const TokenValidity = 7 * 24 * time.Hour

// Claims carries the user id alongside the registered claims.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token bound to userID with HS256.
func GenerateToken(userID string, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "divineverse-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a token string, returning its claims.
func ValidateToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
