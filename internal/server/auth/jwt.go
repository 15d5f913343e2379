// Package auth implements the token and password capabilities of the server:
// HS256-signed access tokens carrying the account email as subject, and
// bcrypt password digests.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity applies when a token is minted without an explicit
// validity window.
const DefaultTokenValidity = 15 * time.Minute

// GenerateToken mints a signed access token with subject = email. A
// non-positive validityDuration falls back to DefaultTokenValidity.
func GenerateToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if validityDuration <= 0 {
		validityDuration = DefaultTokenValidity
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetEmailFromToken verifies the signature and expiry of tokenString and
// returns its subject. All failures map to common.ErrInvalidToken so callers
// cannot distinguish malformed, mis-signed and expired tokens.
func GetEmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
