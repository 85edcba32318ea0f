// Package identity adapts the external identity provider. The provider issues
// HS256-signed bearer tokens; the only thing the application keeps from them
// is the opaque principal id carried in the subject claim.
package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is an authenticated end-user identity.
type Principal struct {
	ID string
}

// Verifier resolves an inbound bearer credential to a principal.
type Verifier interface {
	Verify(token string) (Principal, error)
}

// JWTVerifier verifies tokens signed with the shared provider secret.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier creates a verifier for the given shared secret and expected issuer.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses and validates a bearer token, returning the principal it
// identifies. Expired, malformed, or wrongly-signed tokens fail.
func (v *JWTVerifier) Verify(tokenString string) (Principal, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer))

	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("invalid bearer token")
	}
	if claims.Subject == "" {
		return Principal{}, fmt.Errorf("bearer token has no subject")
	}

	return Principal{ID: claims.Subject}, nil
}

// Issue mints a token for the given principal id. Used for local development
// and tests; in deployment the identity provider issues tokens.
func (v *JWTVerifier) Issue(principalID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   principalID,
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
