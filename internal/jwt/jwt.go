// Package jwt signs and validates the bearer tokens that identify players.
// Identities are anonymous UUIDs; the token's subject is the identity.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"carti-server/internal/config"
)

const issuer = "carti-server"

var signingKey []byte

// LoadKeys loads the signing secret from the configuration. Call early so
// a misconfigured server fails fast.
func LoadKeys() {
	secret := config.Instance().JWT.Secret
	if secret == "" {
		panic("missing jwt secret in configuration")
	}

	signingKey = []byte(secret)
}

// Sign returns a signed token for the identity
func Sign(identity string) (string, error) {
	claims := jwt.StandardClaims{
		Id:       uuid.New().String(),
		Issuer:   issuer,
		Subject:  identity,
		IssuedAt: time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ValidIdentity returns the identity a token was signed for, or an error
// if the token is invalid
func ValidIdentity(tokenString string) (string, error) {
	var claims jwt.StandardClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return signingKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}

	return claims.Subject, nil
}
