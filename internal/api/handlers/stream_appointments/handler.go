package stream_appointments

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers"
)

const (
	msgInvalidSalonID       = "ID do salão inválido"
	msgStreamingUnsupported = "streaming não suportado"

	// keepAliveInterval keeps intermediaries from closing an idle stream.
	keepAliveInterval = 30 * time.Second
)

type Handler struct {
	events EventSource
	logger Logger
}

func NewHandler(events EventSource, logger Logger) *Handler {
	return &Handler{
		events: events,
		logger: logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/appointments/stream
//
// Server-sent events: each appointment insert/update for the salon is
// written as one `data:` frame carrying the change payload. The stream
// stays open until the client disconnects.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/appointments/stream - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /salons/{id}/appointments/stream - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	// The stream outlives the server-wide write timeout; clear the write
	// deadline so long-lived connections are not force-closed mid-stream.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Warn("GET /salons/{id}/appointments/stream - Could not clear write deadline: %v", err)
	}

	events, cancel := h.events.Subscribe(salonID)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /salons/{id}/appointments/stream - Client connected: salon_id=%d", salonID)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /salons/{id}/appointments/stream - Client disconnected: salon_id=%d", salonID)
			return

		case <-keepAlive.C:
			// SSE comment frame, ignored by clients.
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()

		case event := <-events:
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("GET /salons/{id}/appointments/stream - Failed to marshal event: %v", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
