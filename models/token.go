package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a control API bearer token.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. SignedString holds the compact form sent in
// the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	// Operator is the "sub" claim: the name of whoever controls the daemon.
	Operator string `json:"-"`
}

// GetOperator extracts the operator name from the subject claim.
func (t *Token) GetOperator() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting operator from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting operator from token: empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
