package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token issued by the authentication provider.
//
// The "sub" claim carries the opaque user id. UserID caches that claim after
// a successful parse so callers do not re-read the claim set.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the "sub" claim of the token.
func (t *Token) GetUserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject claim")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
