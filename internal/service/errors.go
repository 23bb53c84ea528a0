package service

import (
	"errors"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/store"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

var (
	// ErrDataIntegrityGuard is reported when a pull refused to apply
	// server-side deletions because an empty enumeration is more likely a
	// transport or auth failure than a genuinely empty address book.
	ErrDataIntegrityGuard = errors.New("data integrity guard: empty remote enumeration while imported contacts exist")

	ErrConnectionNotFound   = errors.New("connection not found")
	ErrConnectionExists     = errors.New("connection already exists")
	ErrInvalidConnectConfig = errors.New("invalid connect config")
	ErrInvalidSchedule      = errors.New("invalid schedule")

	// ErrSyncCancelled resolves queued cycles dropped by StopScheduledSync
	// or Disconnect before they started.
	ErrSyncCancelled = errors.New("sync cancelled")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// errorCode maps an operation error onto the result error codes.
func errorCode(err error) models.ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConnectionNotFound):
		return models.ErrorCodeNotFound
	case errors.Is(err, ErrConnectionExists):
		return models.ErrorCodeAlreadyExists
	case errors.Is(err, ErrInvalidConnectConfig),
		errors.Is(err, ErrInvalidSchedule):
		return models.ErrorCodeInvalid
	case errors.Is(err, ErrDataIntegrityGuard):
		return models.ErrorCodeIntegrityGuard
	case errors.Is(err, ErrSyncCancelled):
		return models.ErrorCodeCancelled
	case errors.Is(err, adapter.ErrServerUnavailable):
		return models.ErrorCodeServerUnavailable
	case errors.Is(err, adapter.ErrUnauthorized):
		return models.ErrorCodeUnauthorized
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBridge):
		return models.ErrorCodeUpstream
	default:
		return models.ErrorCodeInternal
	}
}

// errorKind maps an error onto the per-contact error taxonomy.
func errorKind(err error) models.ErrorKind {
	switch {
	case errors.Is(err, adapter.ErrServerUnavailable):
		return models.ErrorKindServerUnavailable
	case errors.Is(err, adapter.ErrVersionConflict):
		return models.ErrorKindConflict
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBridge),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrNotFound):
		return models.ErrorKindTransport
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, store.ErrInvalidContact):
		return models.ErrorKindInvalid
	default:
		return models.ErrorKindStore
	}
}

func contactError(contactID, uid string, kind models.ErrorKind, err error) models.ContactError {
	return models.ContactError{
		ContactID: contactID,
		UID:       uid,
		Kind:      kind,
		Message:   err.Error(),
	}
}
