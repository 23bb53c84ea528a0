// Package utils provides helpers shared by the daemon and the control CLI:
// context keys, JSON responses, the bridge HTTP client, control API tokens
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the context key under which the auth middleware stores
// the operator name taken from the control API token.
var OperatorCtxKey = contextKey("operator")

// WithOperator returns a copy of ctx carrying the operator name.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, OperatorCtxKey, operator)
}

// GetOperatorFromContext retrieves the operator name stored by
// [WithOperator]. ok is false when the value is missing or empty.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	return operator, ok && operator != ""
}
