package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/adapter"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/mock"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/service"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

func newSyncRouter(t *testing.T) (*mock.MockSyncService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sync := mock.NewMockSyncService(ctrl)
	h := NewHandler(&service.Services{SyncService: sync}, AuthConfig{}, logger.Nop())

	return sync, h.Init()
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// connect
// ─────────────────────────────────────────────

func TestConnect_Created(t *testing.T) {
	sync, router := newSyncRouter(t)

	want := models.ConnectConfig{
		ConnectionID: "work",
		ServerURL:    "https://dav.example.com",
		Username:     "alice",
		Password:     "secret",
	}
	sync.EXPECT().Connect(gomock.Any(), want).Return(models.ConnectResult{
		Success:    true,
		Connection: &models.Connection{ID: "work", ServerURL: want.ServerURL},
	})

	rec := serve(router, http.MethodPost, "/api/connections/",
		`{"connectionId":"work","serverUrl":"https://dav.example.com","username":"alice","password":"secret"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.ConnectResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	require.NotNil(t, got.Connection)
	assert.Equal(t, "work", got.Connection.ID)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestConnect_InvalidJSON(t *testing.T) {
	_, router := newSyncRouter(t)

	rec := serve(router, http.MethodPost, "/api/connections/", `{"serverUrl":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, ErrInvalidJSON.Error()), rec.Body.String())
}

func TestConnect_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate", service.ErrConnectionExists, http.StatusConflict},
		{"invalid config", service.ErrInvalidConnectConfig, http.StatusBadRequest},
		{"server down", adapter.ErrServerUnavailable, http.StatusServiceUnavailable},
		{"bad credentials", adapter.ErrUnauthorized, http.StatusBadGateway},
		{"unexpected", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync, router := newSyncRouter(t)
			sync.EXPECT().Connect(gomock.Any(), gomock.Any()).
				Return(models.ConnectResult{Error: fmt.Errorf("connect: %w", tt.err).Error()})

			rec := serve(router, http.MethodPost, "/api/connections/", `{"serverUrl":"https://dav.example.com"}`)

			assert.Equal(t, tt.status, rec.Code)

			var got models.ConnectResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.False(t, got.Success)
			assert.Contains(t, got.Error, tt.err.Error())
		})
	}
}

// ─────────────────────────────────────────────
// disconnect
// ─────────────────────────────────────────────

func TestDisconnect(t *testing.T) {
	sync, router := newSyncRouter(t)
	sync.EXPECT().Disconnect(gomock.Any(), "work").Return(models.OperationResult{Success: true})
	sync.EXPECT().Disconnect(gomock.Any(), "gone").Return(models.OperationResult{Error: service.ErrConnectionNotFound.Error()})

	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/api/connections/work", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/api/connections/gone", "").Code)
}

// ─────────────────────────────────────────────
// pull / push / protect
// ─────────────────────────────────────────────

func TestPull(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sync, router := newSyncRouter(t)
		sync.EXPECT().Pull(gomock.Any(), "work").Return(models.PullResult{
			ConnectionID: "work",
			Success:      true,
			Created:      3,
			Duration:     time.Second,
		})

		rec := serve(router, http.MethodPost, "/api/connections/work/pull", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var got models.PullResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 3, got.Created)
		assert.Equal(t, "work", got.ConnectionID)
	})

	t.Run("integrity guard", func(t *testing.T) {
		sync, router := newSyncRouter(t)
		sync.EXPECT().Pull(gomock.Any(), "work").Return(models.PullResult{
			ConnectionID:    "work",
			Aborted:         true,
			DeletionAborted: true,
			Error:           service.ErrDataIntegrityGuard.Error(),
		})

		rec := serve(router, http.MethodPost, "/api/connections/work/pull", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deletionAborted":true`)
	})

	t.Run("unknown connection", func(t *testing.T) {
		sync, router := newSyncRouter(t)
		sync.EXPECT().Pull(gomock.Any(), "nope").Return(models.PullResult{
			ConnectionID: "nope",
			Error:        fmt.Errorf("pull: %w", service.ErrConnectionNotFound).Error(),
		})

		rec := serve(router, http.MethodPost, "/api/connections/nope/pull", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("code decides over message text", func(t *testing.T) {
		sync, router := newSyncRouter(t)
		sync.EXPECT().Pull(gomock.Any(), "work").Return(models.PullResult{
			ConnectionID: "work",
			Error:        fmt.Errorf("list local contacts: note %q", adapter.ErrUnauthorized.Error()).Error(),
			Code:         models.ErrorCodeInternal,
		})

		rec := serve(router, http.MethodPost, "/api/connections/work/pull", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"internal"`)
	})
}

func TestPushAll(t *testing.T) {
	sync, router := newSyncRouter(t)
	sync.EXPECT().PushAll(gomock.Any(), "work").Return(models.BatchResult{
		ConnectionID: "work",
		Success:      true,
		Total:        2,
		Pushed:       1,
		Skipped:      1,
	})
	sync.EXPECT().PushAll(gomock.Any(), "down").Return(models.BatchResult{
		ConnectionID: "down",
		Error:        adapter.ErrServerUnavailable.Error(),
	})

	rec := serve(router, http.MethodPost, "/api/connections/work/push", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Pushed)
	assert.Equal(t, 1, got.Skipped)

	assert.Equal(t, http.StatusServiceUnavailable, serve(router, http.MethodPost, "/api/connections/down/push", "").Code)
}

func TestProtect(t *testing.T) {
	sync, router := newSyncRouter(t)
	sync.EXPECT().Protect(gomock.Any(), "work").Return(models.ProtectionResult{
		ConnectionID: "work",
		Success:      true,
		Checked:      4,
		Corrected:    1,
	})

	rec := serve(router, http.MethodPost, "/api/connections/work/protect", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ProtectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 4, got.Checked)
	assert.Equal(t, 1, got.Corrected)
}

// ─────────────────────────────────────────────
// schedule
// ─────────────────────────────────────────────

func TestStartSchedule(t *testing.T) {
	sync, router := newSyncRouter(t)
	sync.EXPECT().StartScheduledSync(gomock.Any(), "work", models.Schedule{
		PullInterval:       time.Minute,
		PushInterval:       2 * time.Minute,
		PushOffset:         5 * time.Second,
		ProtectionInterval: -time.Millisecond,
	}).Return(models.OperationResult{Success: true})

	rec := serve(router, http.MethodPost, "/api/connections/work/schedule",
		`{"pullIntervalMs":60000,"pushIntervalMs":120000,"pushOffsetMs":5000,"protectionIntervalMs":-1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestStartSchedule_Errors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		_, router := newSyncRouter(t)
		rec := serve(router, http.MethodPost, "/api/connections/work/schedule", `[`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		sync, router := newSyncRouter(t)
		sync.EXPECT().StartScheduledSync(gomock.Any(), "work", gomock.Any()).
			Return(models.OperationResult{Error: service.ErrInvalidSchedule.Error()})

		rec := serve(router, http.MethodPost, "/api/connections/work/schedule", `{"pullIntervalMs":-5}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStopSchedule(t *testing.T) {
	sync, router := newSyncRouter(t)
	sync.EXPECT().StopScheduledSync(gomock.Any(), "work").Return(models.OperationResult{Success: true})

	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/api/connections/work/schedule", "").Code)
}

// ─────────────────────────────────────────────
// status
// ─────────────────────────────────────────────

func TestGetStatus(t *testing.T) {
	sync, router := newSyncRouter(t)
	sync.EXPECT().GetStatus(gomock.Any(), "work").Return(models.ConnectionStatus{
		ConnectionID: "work",
		Connected:    true,
		QueueLength:  2,
		Scheduled:    true,
	})
	sync.EXPECT().GetStatus(gomock.Any(), "nope").Return(models.ConnectionStatus{
		ConnectionID: "nope",
		LastError:    service.ErrConnectionNotFound.Error(),
	})

	rec := serve(router, http.MethodGet, "/api/connections/work/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ConnectionStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Connected)
	assert.True(t, got.Scheduled)
	assert.Equal(t, 2, got.QueueLength)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/connections/nope/status", "").Code)
}
