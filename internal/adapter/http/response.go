package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type campaignResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Goal         uint64    `json:"goal"`
	AmountRaised uint64    `json:"amount_raised"`
	IsActive     bool      `json:"is_active"`
	Status       string    `json:"status"`
	Owner        string    `json:"owner"`
	HeldBalance  *uint64   `json:"held_balance,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           string(c.ID),
		Title:        c.Title,
		Goal:         c.Goal,
		AmountRaised: c.AmountRaised,
		IsActive:     c.IsActive,
		Status:       string(c.Status()),
		Owner:        string(c.Owner),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func newCampaignViewResponse(v port.CampaignView) campaignResponse {
	resp := newCampaignResponse(v.Campaign)
	held := v.HeldBalance
	resp.HeldBalance = &held
	return resp
}

type transferResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	Amount    uint64    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type accountResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// statusFor maps a domain error code to an HTTP status.
func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeInvalidRequest, domain.CodeInvalidGoal, domain.CodeInvalidAmount, domain.CodeInvalidTitle, domain.CodeInvalidCampaignID:
		return http.StatusBadRequest
	case domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.CodeUnauthorizedAccess:
		return http.StatusForbidden
	case domain.CodeRecordNotFound:
		return http.StatusNotFound
	case domain.CodeDuplicateCampaign, domain.CodeCampaignInactive, domain.CodeGoalNotReached:
		return http.StatusConflict
	case domain.CodeTransferFailed, domain.CodeAmountOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as {"code","error"}. Non-domain errors are logged
// and reported as a generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.CodeOf(err)
	status := statusFor(code)
	body := errorResponse{Code: string(code), Error: err.Error()}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		body = errorResponse{Code: "INTERNAL", Error: "internal error"}
	}
	h.writeJSON(w, status, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// decodeJSON decodes the request body into v. Malformed bodies, unknown
// fields and negative or fractional amounts are rejected.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
