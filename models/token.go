package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type reported alongside every issued token.
const TokenTypeBearer = "bearer"

// Token wraps a JWT token issued to or presented by a user.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) as sent in the Authorization header.
// Email is the parsed "sub" claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Email is the subject the token was issued for.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// AccessToken is the response body of a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewAccessToken builds a bearer [AccessToken] from an issued token.
func NewAccessToken(token Token) AccessToken {
	return AccessToken{
		AccessToken: token.SignedString,
		TokenType:   TokenTypeBearer,
	}
}
