// Package validators checks the inputs of connection and schedule requests
// before the orchestrator acts on them.
//
// Validators only look at the values they are given. They never reach the
// bridge or the local store, so a rejected request has no side effects.
package validators

import "context"

// Validator checks obj and reports the first rule it breaks. When fields
// are given only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
