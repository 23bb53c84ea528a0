package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
	"github.com/tompatulpan/Contact-Manager-sub002/internal/utils"
	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	utils.WriteJSON(w, errorResponse{Error: msg}, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func connectionID(r *http.Request) string {
	return chi.URLParam(r, "connectionID")
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var cfg models.ConnectConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Err(err).Str("func", "*Handler.connect").Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	result := h.services.SyncService.Connect(r.Context(), cfg)
	if !result.Success {
		log.Error().Str("func", "*Handler.connect").Str("error", result.Error).Msg("connect failed")
		utils.WriteJSON(w, result, errorStatus(result.Code, result.Error))
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	result := h.services.SyncService.Disconnect(r.Context(), connectionID(r))
	utils.WriteJSON(w, result, resultStatus(result.Success, result.Code, result.Error))
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	result := h.services.SyncService.Pull(r.Context(), connectionID(r))
	utils.WriteJSON(w, result, resultStatus(result.Success, result.Code, result.Error))
}

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	result := h.services.SyncService.PushAll(r.Context(), connectionID(r))
	utils.WriteJSON(w, result, resultStatus(result.Success, result.Code, result.Error))
}

func (h *Handler) protect(w http.ResponseWriter, r *http.Request) {
	result := h.services.SyncService.Protect(r.Context(), connectionID(r))
	utils.WriteJSON(w, result, resultStatus(result.Success, result.Code, result.Error))
}

func (h *Handler) startSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.startSchedule").Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	result := h.services.SyncService.StartScheduledSync(r.Context(), connectionID(r), req.Schedule())
	utils.WriteJSON(w, result, resultStatus(result.Success, result.Code, result.Error))
}

func (h *Handler) stopSchedule(w http.ResponseWriter, r *http.Request) {
	result := h.services.SyncService.StopScheduledSync(r.Context(), connectionID(r))
	utils.WriteJSON(w, result, resultStatus(result.Success, result.Code, result.Error))
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status := h.services.SyncService.GetStatus(r.Context(), connectionID(r))
	if !status.Connected {
		utils.WriteJSON(w, status, errorStatus(status.LastErrorCode, status.LastError))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
