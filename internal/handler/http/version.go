package http

import (
	"net/http"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

// getServerVersion answers with the daemon build version as plain text. It
// is reachable without a control token.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("writing version failed")
	}
}
