package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating access tokens.
// The delivery layer uses it to resolve the acting customer; the domain
// services themselves only ever see the resolved customer ID.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
