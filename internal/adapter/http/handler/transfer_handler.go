package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
	"github.com/iho/gowallet/internal/usecase"
)

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC *usecase.TransferUseCase
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC *usecase.TransferUseCase) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// Create executes a transfer. Replaying an already-processed
// transaction id acknowledges success without touching the ledger.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	request, err := req.ToDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.transferUC.Transfer(r.Context(), request); err != nil {
		metrics.TransferErrors.WithLabelValues(errorKind(err)).Inc()

		status := mapDomainError(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).
				Str("transaction_id", request.TransactionID.String()).
				Msg("transfer failed")
		}

		writeError(w, status, errorKind(err), err.Error())

		return
	}

	metrics.TransfersCompleted.Inc()

	writeJSON(w, http.StatusCreated, dto.TransferResponse{
		TransactionID: request.TransactionID.String(),
		Status:        "completed",
	})
}
