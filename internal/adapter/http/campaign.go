package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type createCampaignRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Goal  uint64 `json:"goal"`
}

type contributeRequest struct {
	Amount uint64 `json:"amount"`
}

// handleCreateCampaign creates a campaign owned by the caller and returns
// it with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, domain.Wrap(domain.CodeInvalidRequest, "invalid JSON body", err))
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		ID:    domain.CampaignID(req.ID),
		Title: req.Title,
		Goal:  req.Goal,
	}, caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(*c))
}

// handleGetCampaign returns the campaign with its held balance. A ledger
// mismatch is logged but the campaign is still returned.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := domain.CampaignID(chi.URLParam(r, "id"))
	view, err := h.svc.Audit(r.Context(), id)
	if errors.Is(err, domain.ErrLedgerMismatch) && view != nil {
		h.logger.Error("campaign ledger mismatch",
			slog.String("campaign_id", string(id)),
			slog.Uint64("amount_raised", view.Campaign.AmountRaised),
			slog.Uint64("held_balance", view.HeldBalance),
			slog.Any("error", err))
		err = nil
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignViewResponse(*view))
}

// handleContribute moves the requested amount from the caller into the
// campaign.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	var req contributeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, domain.Wrap(domain.CodeInvalidRequest, "invalid JSON body", err))
		return
	}
	c, err := h.svc.Contribute(r.Context(), domain.CampaignID(chi.URLParam(r, "id")), caller(r), req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleWithdraw pays the campaign out to the caller, who must own it.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Withdraw(r.Context(), domain.CampaignID(chi.URLParam(r, "id")), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleHistory lists the ledger movements of a campaign in order.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context(), domain.CampaignID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]transferResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, transferResponse{
			ID:        e.ID,
			Kind:      string(e.Transfer.Kind),
			From:      string(e.Transfer.From),
			To:        string(e.Transfer.To),
			Amount:    e.Transfer.Amount,
			CreatedAt: e.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
