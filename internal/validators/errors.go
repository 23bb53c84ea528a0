package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidConnectionID = errors.New("invalid connection id")
	ErrInvalidServerURL    = errors.New("invalid server URL")
	ErrEmptyUsername       = errors.New("username is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrInvalidCapabilities = errors.New("invalid capabilities")
	ErrInvalidInterval     = errors.New("invalid interval")
	ErrInvalidOffset       = errors.New("invalid push offset")
)
