package httpadapter

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/auth"
	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

var created = time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

func newTestHandler(t *testing.T, opts Options) (*Handler, *mocks.MockCampaignUseCase) {
	t.Helper()
	svc := mocks.NewMockCampaignUseCase(t)
	authn := mocks.NewMockAuthenticator(t)
	authn.EXPECT().Authenticate(mock.Anything, "alice-token").Return("alice", nil).Maybe()
	authn.EXPECT().Authenticate(mock.Anything, "bad-token").Return("", domain.ErrUnauthenticated).Maybe()
	return NewHandler(svc, authn, slog.New(slog.DiscardHandler), opts), svc
}

func do(h *Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func sampleCampaign() domain.Campaign {
	return domain.Campaign{
		ID:        "roof",
		Title:     "Roof",
		Goal:      1000,
		IsActive:  true,
		Owner:     "alice",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t, Options{})
	rec := do(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAuthentication(t *testing.T) {
	h, _ := newTestHandler(t, Options{})

	rec := do(h, http.MethodGet, "/api/v1/accounts/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, string(domain.CodeUnauthenticated), decodeError(t, rec).Code)

	rec = do(h, http.MethodGet, "/api/v1/accounts/me", "bad-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCampaign(t *testing.T) {
	h, svc := newTestHandler(t, Options{})
	c := sampleCampaign()
	svc.EXPECT().
		CreateCampaign(mock.Anything, port.CreateCampaignReq{ID: "roof", Title: "Roof", Goal: 1000}, domain.Identity("alice")).
		Return(&c, nil)

	rec := do(h, http.MethodPost, "/api/v1/campaigns", "alice-token", `{"id":"roof","title":"Roof","goal":1000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body campaignResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "roof", body.ID)
	assert.Equal(t, "alice", body.Owner)
	assert.Equal(t, "active", body.Status)
	assert.Nil(t, body.HeldBalance)
}

func TestCreateCampaign_OwnerComesFromToken(t *testing.T) {
	h, _ := newTestHandler(t, Options{})

	rec := do(h, http.MethodPost, "/api/v1/campaigns", "alice-token", `{"title":"Roof","goal":1,"owner":"mallory"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(domain.CodeInvalidRequest), decodeError(t, rec).Code)
}

func TestContribute_BadBodies(t *testing.T) {
	h, _ := newTestHandler(t, Options{})

	for name, body := range map[string]string{
		"negative":   `{"amount":-5}`,
		"fractional": `{"amount":1.5}`,
		"too large":  `{"amount":18446744073709551616}`,
		"not json":   `amount=5`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/api/v1/campaigns/roof/contributions", "alice-token", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrUnauthorizedAccess, http.StatusForbidden},
		{domain.ErrRecordNotFound, http.StatusNotFound},
		{domain.ErrCampaignInactive, http.StatusConflict},
		{domain.ErrGoalNotReached, http.StatusConflict},
		{domain.Wrap(domain.CodeTransferFailed, "contribution transfer failed", domain.ErrInsufficientFunds), http.StatusUnprocessableEntity},
		{domain.ErrAmountOverflow, http.StatusUnprocessableEntity},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h, svc := newTestHandler(t, Options{})
			svc.EXPECT().Contribute(mock.Anything, domain.CampaignID("roof"), domain.Identity("alice"), uint64(5)).Return(nil, tt.err)

			rec := do(h, http.MethodPost, "/api/v1/campaigns/roof/contributions", "alice-token", `{"amount":5}`)
			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body.Error)
				assert.NotContains(t, body.Error, "connection reset")
			} else {
				assert.Equal(t, string(domain.CodeOf(tt.err)), body.Code)
			}
		})
	}
}

func TestWithdraw(t *testing.T) {
	h, svc := newTestHandler(t, Options{})
	c := sampleCampaign()
	c.AmountRaised = 1000
	c.IsActive = false
	svc.EXPECT().Withdraw(mock.Anything, domain.CampaignID("roof"), domain.Identity("alice")).Return(&c, nil)

	rec := do(h, http.MethodPost, "/api/v1/campaigns/roof/withdrawal", "alice-token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body campaignResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.IsActive)
	assert.Equal(t, "withdrawn", body.Status)
}

func TestGetCampaign_LedgerMismatchStillServes(t *testing.T) {
	h, svc := newTestHandler(t, Options{})
	view := &port.CampaignView{Campaign: sampleCampaign(), HeldBalance: 7}
	svc.EXPECT().Audit(mock.Anything, domain.CampaignID("roof")).Return(view, domain.ErrLedgerMismatch)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/roof", "alice-token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body campaignResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.HeldBalance)
	assert.Equal(t, uint64(7), *body.HeldBalance)
}

func TestDeposits_Toggle(t *testing.T) {
	h, _ := newTestHandler(t, Options{})
	rec := do(h, http.MethodPost, "/api/v1/accounts/me/deposits", "alice-token", `{"amount":5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h, svc := newTestHandler(t, Options{AllowDeposits: true})
	svc.EXPECT().Deposit(mock.Anything, domain.Identity("alice"), uint64(5)).Return(15, nil)
	rec = do(h, http.MethodPost, "/api/v1/accounts/me/deposits", "alice-token", `{"amount":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body accountResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, accountResponse{Account: "user:alice", Balance: 15}, body)
}

// TestEndToEnd drives the real use case, memory store and token verifier
// through the router.
func TestEndToEnd(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(configs.Auth{
		Issuer:    "crowdfund",
		Audience:  "crowdfund-api",
		PublicKey: base64.RawStdEncoding.EncodeToString(pub),
	})
	require.NoError(t, err)
	signer := auth.NewSigner("crowdfund", "crowdfund-api", priv)
	token := func(who domain.Identity) string {
		s, err := signer.Sign(who, time.Minute)
		require.NoError(t, err)
		return s
	}

	store := memory.NewStore()
	require.NoError(t, store.Deposit(context.Background(), "user:bob", 1500))
	svc := usecase.NewCampaignUseCase(store, store, nil)
	h := NewHandler(svc, verifier, slog.New(slog.DiscardHandler), Options{AllowDeposits: true})

	alice, bob := token("alice"), token("bob")

	rec := do(h, http.MethodPost, "/api/v1/campaigns", alice, `{"id":"a","title":"A","goal":1000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/v1/campaigns/a/contributions", bob, `{"amount":400}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(h, http.MethodPost, "/api/v1/campaigns/a/withdrawal", alice, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(domain.CodeGoalNotReached), decodeError(t, rec).Code)

	rec = do(h, http.MethodPost, "/api/v1/campaigns/a/contributions", bob, `{"amount":700}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/campaigns/a/withdrawal", bob, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/campaigns/a/withdrawal", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/campaigns/a/withdrawal", alice, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(domain.CodeCampaignInactive), decodeError(t, rec).Code)

	rec = do(h, http.MethodGet, "/api/v1/campaigns/a", bob, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var campaign campaignResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&campaign))
	assert.Equal(t, uint64(1100), campaign.AmountRaised)
	require.NotNil(t, campaign.HeldBalance)
	assert.Zero(t, *campaign.HeldBalance)

	rec = do(h, http.MethodGet, "/api/v1/accounts/me", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var account accountResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&account))
	assert.Equal(t, uint64(1100), account.Balance)

	rec = do(h, http.MethodGet, "/api/v1/campaigns/a/transfers", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var transfers []transferResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&transfers))
	require.Len(t, transfers, 3)
	assert.Equal(t, "withdrawal", transfers[2].Kind)

	rec = do(h, http.MethodPost, "/api/v1/campaigns/a/contributions", bob, `{"amount":1000}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/campaigns/missing", bob, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
