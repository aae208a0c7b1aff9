package sync_transactions

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/helderalustau/kiagenda-beauty-hub-sub001/internal/api/handlers"
)

const (
	msgInvalidSalonID = "ID do salão inválido"
)

// SyncResponse reports how many ledger rows the resync created.
type SyncResponse struct {
	TransactionsCreated int `json:"transactionsCreated"`
}

type Handler struct {
	service FinanceService
	logger  Logger
}

func NewHandler(service FinanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonId}/financial/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /salons/{id}/financial/sync - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	created, err := h.service.Resync(r.Context(), salonID)
	if err != nil {
		h.logger.Error("POST /salons/{id}/financial/sync - Resync failed: salon_id=%d, error=%v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /salons/{id}/financial/sync - Resync done: salon_id=%d, transactions_created=%d",
		salonID, created)
	handlers.RespondJSON(w, http.StatusOK, SyncResponse{TransactionsCreated: created})
}
