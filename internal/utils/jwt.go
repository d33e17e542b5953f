package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/series-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTOptions carries the signing parameters shared by token generation and
// validation.
type JWTOptions struct {
	// SignKey is the shared HMAC secret.
	SignKey string
	// Algorithm is the JWT "alg" name, e.g. "HS256".
	Algorithm string
	// Issuer is the optional "iss" claim. Empty means no issuer is written
	// or checked.
	Issuer string
	// Duration is the lifetime of generated tokens.
	Duration time.Duration
}

// GenerateJWTToken creates a signed JWT token for the given subject.
//
// The token includes the following standard claims:
//   - Subject   (sub): the user's email
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus opts.Duration
//   - Issuer    (iss): opts.Issuer, when set
//
// Returns an error if the subject, key or duration is empty, or the
// algorithm is not an HMAC algorithm known to the jwt library.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("alice@example.com", utils.JWTOptions{
//	    SignKey: "secret", Algorithm: "HS256", Duration: 30 * time.Minute,
//	})
func GenerateJWTToken(subject string, opts JWTOptions) (models.Token, error) {
	if subject == "" || opts.Duration <= 0 || opts.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := hmacSigningMethod(opts.Algorithm)
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    opts.Issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(opts.Duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(opts.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Email: subject}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its subject.
//
// Validation includes:
//   - Signature verification with opts.SignKey
//   - Algorithm check: only opts.Algorithm is accepted
//   - Expiration (exp) claim presence and check
//   - Issuer (iss) claim check when opts.Issuer is set
//   - Subject (sub) claim presence
//
// Expired tokens produce an error wrapping [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString string, opts JWTOptions) (models.Token, error) {
	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{opts.Algorithm}),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(opts.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(opts.SignKey), nil
	}, parserOptions...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, SignedString: tokenString, Email: subject}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func hmacSigningMethod(alg string) (jwt.SigningMethod, error) {
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", alg)
	}
	return method, nil
}
