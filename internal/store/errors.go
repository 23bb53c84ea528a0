package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match them
// with [errors.Is].
var (
	// ErrContactNotFound is returned when no contact has the requested id.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrContactAlreadyExists is returned when a contact with the same id or
	// UID is already stored.
	ErrContactAlreadyExists = errors.New("contact already exists")

	// ErrWrongPassphrase is returned when the store passphrase does not match
	// the one the database was created with.
	ErrWrongPassphrase = errors.New("wrong store passphrase")

	// ErrInvalidContact is returned for contacts that cannot be stored, such
	// as ones with an unknown ownership value.
	ErrInvalidContact = errors.New("invalid contact")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrSealing is returned when the vCard column cannot be encrypted or
	// decrypted.
	ErrSealing = errors.New("failed to seal contact")
)
