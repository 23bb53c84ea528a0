package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want int
	}{
		{"not found", service.ErrConnectionNotFound.Error(), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("pull work: %w", service.ErrConnectionNotFound).Error(), http.StatusNotFound},
		{"exists", service.ErrConnectionExists.Error(), http.StatusConflict},
		{"integrity guard", service.ErrDataIntegrityGuard.Error(), http.StatusConflict},
		{"cancelled", service.ErrSyncCancelled.Error(), http.StatusConflict},
		{"invalid config", service.ErrInvalidConnectConfig.Error(), http.StatusBadRequest},
		{"invalid schedule", service.ErrInvalidSchedule.Error(), http.StatusBadRequest},
		{"server unavailable", adapter.ErrServerUnavailable.Error(), http.StatusServiceUnavailable},
		{"unauthorized", adapter.ErrUnauthorized.Error(), http.StatusBadGateway},
		{"transport", adapter.ErrTransport.Error(), http.StatusBadGateway},
		{"bridge", adapter.ErrBridge.Error(), http.StatusBadGateway},
		{"unknown", "something odd", http.StatusInternalServerError},
		{"empty", "", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.msg))
		})
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		code models.ErrorCode
		msg  string
		want int
	}{
		{"code wins over message", models.ErrorCodeNotFound, "bridge returned: " + adapter.ErrUnauthorized.Error(), http.StatusNotFound},
		{"message naming another error", models.ErrorCodeInternal, "contact note mentions " + service.ErrConnectionNotFound.Error(), http.StatusInternalServerError},
		{"already exists", models.ErrorCodeAlreadyExists, "", http.StatusConflict},
		{"invalid", models.ErrorCodeInvalid, "", http.StatusBadRequest},
		{"integrity guard", models.ErrorCodeIntegrityGuard, "", http.StatusConflict},
		{"cancelled", models.ErrorCodeCancelled, "", http.StatusConflict},
		{"server unavailable", models.ErrorCodeServerUnavailable, "", http.StatusServiceUnavailable},
		{"unauthorized", models.ErrorCodeUnauthorized, "", http.StatusBadGateway},
		{"upstream", models.ErrorCodeUpstream, "", http.StatusBadGateway},
		{"no code falls back to message", "", service.ErrInvalidSchedule.Error(), http.StatusBadRequest},
		{"unknown code falls back to message", "mystery", adapter.ErrServerUnavailable.Error(), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorStatus(tt.code, tt.msg))
		})
	}
}

func TestResultStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, resultStatus(true, "", ""))
	assert.Equal(t, http.StatusOK, resultStatus(true, models.ErrorCodeNotFound, service.ErrConnectionNotFound.Error()))
	assert.Equal(t, http.StatusNotFound, resultStatus(false, "", service.ErrConnectionNotFound.Error()))
	assert.Equal(t, http.StatusNotFound, resultStatus(false, models.ErrorCodeNotFound, "pull failed"))
	assert.Equal(t, http.StatusInternalServerError, resultStatus(false, "", ""))
}
