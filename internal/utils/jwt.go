package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-safe-share/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned for headers that are not of the
// form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken signs an HS256 token whose "sub" claim is userID.
//
// The blob server only verifies tokens; minting lives here so tests and the
// `safeshare token` helper share one code path with the verifier.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-safe-share", "alice", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry of
// tokenString and returns the token with UserID set from the "sub" claim.
// Only HMAC signing methods are accepted.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer ..."
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseUserIDFromJWT reads the "sub" claim without verifying the signature.
// The client uses it to learn its own owner id; the server never does.
func ParseUserIDFromJWT(tokenString string) (string, error) {
	claims := &models.Token{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}

	return claims.GetUserID()
}
