package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
	"github.com/iho/gowallet/internal/usecase"
)

// LedgerHandler handles ledger-wide HTTP requests.
type LedgerHandler struct {
	ledgerUC *usecase.LedgerUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Consistency audits the ledger and reports the result. An inconsistent
// ledger is a 200 with consistent=false, not an error status: the audit
// itself succeeded.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	err := h.ledgerUC.CheckConsistency(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) {
			metrics.ConsistencyChecks.WithLabelValues("inconsistent").Inc()
			log.Warn().Err(err).Msg("ledger consistency check failed")

			writeJSON(w, http.StatusOK, dto.ConsistencyResponse{
				Consistent: false,
				Detail:     err.Error(),
			})

			return
		}

		metrics.ConsistencyChecks.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())

		return
	}

	metrics.ConsistencyChecks.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: true})
}
