package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/usecase"
)

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC *usecase.AccountUseCase
	entryUC   *usecase.EntryUseCase
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC *usecase.AccountUseCase, entryUC *usecase.EntryUseCase) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		entryUC:   entryUC,
	}
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), errorKind(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Balance returns the account's balance derived from its entry log.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	balance, err := h.accountUC.Balance(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), errorKind(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: id.String(),
		Balance:   balance,
	})
}

// Entries lists the account's ledger entries in insertion order.
func (h *AccountHandler) Entries(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	exists, err := h.accountUC.AccountExists(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	if !exists {
		writeError(w, http.StatusNotFound, "account_not_found", "account does not exist")
		return
	}

	entries, err := h.entryUC.EntriesByAccount(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// accountID parses the {id} URL parameter, writing a 400 on malformed
// input.
func accountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "account id must be a UUID")
		return uuid.Nil, false
	}

	return id, true
}
