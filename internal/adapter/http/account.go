package httpadapter

import (
	"net/http"

	"crowdfund/internal/core/domain"
)

type depositRequest struct {
	Amount uint64 `json:"amount"`
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	who := caller(r)
	balance, err := h.svc.Balance(r.Context(), who)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, accountResponse{Account: string(who.Account()), Balance: balance})
}

// handleDeposit credits the caller's account. Only routed when deposits
// are enabled.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, domain.Wrap(domain.CodeInvalidRequest, "invalid JSON body", err))
		return
	}
	who := caller(r)
	balance, err := h.svc.Deposit(r.Context(), who, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, accountResponse{Account: string(who.Account()), Balance: balance})
}
