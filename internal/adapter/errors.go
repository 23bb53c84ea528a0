package adapter

import "errors"

// Sentinel errors returned by [BridgeAdapter] implementations. Callers should
// match them with [errors.Is].
var (
	// ErrTransport is returned when the bridge could not be reached at all
	// or answered with something that is not a bridge response.
	ErrTransport = errors.New("bridge transport error")

	// ErrServerUnavailable is returned when the bridge reports that the
	// remote address-book server is down or unreachable.
	ErrServerUnavailable = errors.New("remote server unavailable")

	// ErrVersionConflict is returned when the remote server rejected a write
	// because the record changed in the meantime.
	ErrVersionConflict = errors.New("version conflict")

	// ErrUnauthorized is returned when the remote server rejected the
	// connection credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when the addressed connection or record does
	// not exist on the bridge.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest is returned when the bridge rejected the request body.
	ErrBadRequest = errors.New("bad request")

	// ErrBridge is returned for any other non-2xx bridge response.
	ErrBridge = errors.New("bridge error")
)
