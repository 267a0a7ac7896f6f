package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token.
//
// The "sub" claim carries the account ID; email and role are custom claims
// so that downstream handlers can authorize without a database round trip.
type SessionClaims struct {
	// Email of the authenticated account.
	Email string `json:"email"`

	// Role of the authenticated account at the time of issuance.
	Role Role `json:"role"`

	jwt.RegisteredClaims
}

// AccountID returns the account identifier carried in the "sub" claim.
func (c SessionClaims) AccountID() string {
	return c.Subject
}

// Token wraps a signed session token.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent to the client.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// SessionUser is the account record merged with its session token, as
// returned by a successful login.
type SessionUser struct {
	Account
	Token string `json:"token"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	User SessionUser `json:"user"`
}
