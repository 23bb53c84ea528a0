// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tompatulpan/Contact-Manager-sub002/internal/logger"
)

const eventBuffer = 64

// streamEvents relays engine events as server-sent events until the client
// goes away. An optional connection query parameter filters by connection.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming is not supported")
		return
	}
	filter := r.URL.Query().Get("connection")

	events, unsubscribe := h.services.SyncService.Subscribe(eventBuffer)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case e, open := <-events:
			if !open {
				return
			}
			if filter != "" && e.ConnectionID != filter {
				continue
			}

			data, err := json.Marshal(e)
			if err != nil {
				log.Err(err).Str("func", "*Handler.streamEvents").Msg("failed to encode event")
				continue
			}
			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
