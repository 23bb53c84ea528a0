package http

import (
	"net/http"
	"strings"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// codeStatuses maps result error codes onto response codes.
var codeStatuses = map[models.ErrorCode]int{
	models.ErrorCodeNotFound:          http.StatusNotFound,
	models.ErrorCodeAlreadyExists:     http.StatusConflict,
	models.ErrorCodeInvalid:           http.StatusBadRequest,
	models.ErrorCodeIntegrityGuard:    http.StatusConflict,
	models.ErrorCodeCancelled:         http.StatusConflict,
	models.ErrorCodeServerUnavailable: http.StatusServiceUnavailable,
	models.ErrorCodeUnauthorized:      http.StatusBadGateway,
	models.ErrorCodeUpstream:          http.StatusBadGateway,
	models.ErrorCodeInternal:          http.StatusInternalServerError,
}

// errorStatuses maps error messages onto response codes for results that
// carry no error code. The first hit wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrConnectionNotFound, http.StatusNotFound},
	{service.ErrConnectionExists, http.StatusConflict},
	{service.ErrInvalidConnectConfig, http.StatusBadRequest},
	{service.ErrInvalidSchedule, http.StatusBadRequest},
	{service.ErrDataIntegrityGuard, http.StatusConflict},
	{service.ErrSyncCancelled, http.StatusConflict},

	{adapter.ErrServerUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrTransport, http.StatusBadGateway},
	{adapter.ErrBridge, http.StatusBadGateway},
}

func statusFromError(msg string) int {
	for _, e := range errorStatuses {
		if strings.Contains(msg, e.err.Error()) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorStatus maps a result error on its code and falls back to the
// message when the code is empty or unknown.
func errorStatus(code models.ErrorCode, errMsg string) int {
	if status, ok := codeStatuses[code]; ok {
		return status
	}
	return statusFromError(errMsg)
}

// resultStatus is 200 for a successful result and the mapped error status
// otherwise.
func resultStatus(success bool, code models.ErrorCode, errMsg string) int {
	if success {
		return http.StatusOK
	}
	return errorStatus(code, errMsg)
}
