package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const tracerName = "crowdfund/internal/adapter/usecase"

// CampaignUseCase provides the campaign lifecycle operations. It runs the
// pure domain transitions inside the repository's atomic update so the
// record change and the fund movement commit together or not at all.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	ledger port.Ledger
	logger *slog.Logger
	tracer trace.Tracer

	// now is the clock used for record timestamps.
	now func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a new usecase with the provided repository
// and ledger. A nil logger discards log output.
func NewCampaignUseCase(repo port.CampaignRepository, ledger port.Ledger, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignUseCase{
		repo:   repo,
		ledger: ledger,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
}

// CreateCampaign validates the request and stores a new active campaign
// owned by creator. An empty id is replaced by a random UUID.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq, creator domain.Identity) (_ *domain.Campaign, err error) {
	if req.ID == "" {
		req.ID = domain.CampaignID(uuid.NewString())
	}
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.CreateCampaign", trace.WithAttributes(
		attribute.String("campaign.id", string(req.ID)),
		attribute.String("campaign.goal", strconv.FormatUint(req.Goal, 10)),
	))
	defer func() { endSpan(span, err) }()

	c, err := domain.NewCampaign(req.ID, req.Title, req.Goal, creator, u.now())
	if err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", string(c.ID)),
		slog.String("owner", string(c.Owner)),
		slog.Uint64("goal", c.Goal))
	return &c, nil
}

// GetCampaign returns the campaign and the current escrow balance.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id domain.CampaignID) (_ *port.CampaignView, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.GetCampaign", trace.WithAttributes(
		attribute.String("campaign.id", string(id)),
	))
	defer func() { endSpan(span, err) }()

	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	held, err := u.ledger.Balance(ctx, id.Account())
	if err != nil {
		return nil, fmt.Errorf("read held balance: %w", err)
	}
	return &port.CampaignView{Campaign: c, HeldBalance: held}, nil
}

// Contribute moves amount from the contributor's account into escrow and
// raises the campaign total. The counter is only persisted after the
// ledger confirms the transfer; a failed transfer leaves the record as
// it was.
func (u *CampaignUseCase) Contribute(ctx context.Context, id domain.CampaignID, contributor domain.Identity, amount uint64) (_ *domain.Campaign, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.Contribute", trace.WithAttributes(
		attribute.String("campaign.id", string(id)),
		attribute.String("contribution.amount", strconv.FormatUint(amount, 10)),
	))
	defer func() { endSpan(span, err) }()

	updated, err := u.repo.Update(ctx, id, func(ctx context.Context, current domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
		next, transfer, err := current.Contribute(contributor, amount)
		if err != nil {
			return current, err
		}
		if err = ledger.Transfer(ctx, transfer); err != nil {
			return current, domain.Wrap(domain.CodeTransferFailed, "contribution transfer failed", err)
		}
		next.UpdatedAt = u.now().UTC()
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("contribution accepted",
		slog.String("campaign_id", string(id)),
		slog.String("contributor", string(contributor)),
		slog.Uint64("amount", amount),
		slog.Uint64("amount_raised", updated.AmountRaised))
	return &updated, nil
}

// Withdraw pays the full raised amount to the owner and closes the
// campaign for good.
func (u *CampaignUseCase) Withdraw(ctx context.Context, id domain.CampaignID, caller domain.Identity) (_ *domain.Campaign, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.Withdraw", trace.WithAttributes(
		attribute.String("campaign.id", string(id)),
	))
	defer func() { endSpan(span, err) }()

	updated, err := u.repo.Update(ctx, id, func(ctx context.Context, current domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
		next, transfer, err := current.Withdraw(caller)
		if err != nil {
			return current, err
		}
		if err = ledger.Transfer(ctx, transfer); err != nil {
			// Escrow should always cover amount_raised while active.
			u.logger.Error("withdrawal transfer failed, escrow out of sync with record",
				slog.String("campaign_id", string(id)),
				slog.Uint64("amount_raised", current.AmountRaised),
				slog.Any("error", err))
			return current, domain.Wrap(domain.CodeTransferFailed, "withdrawal transfer failed", err)
		}
		next.UpdatedAt = u.now().UTC()
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("campaign withdrawn",
		slog.String("campaign_id", string(id)),
		slog.String("owner", string(updated.Owner)),
		slog.Uint64("amount", updated.AmountRaised))
	return &updated, nil
}

// Audit returns the campaign view and domain.ErrLedgerMismatch when the
// escrow balance differs from what the record implies. The view is
// returned in both cases.
func (u *CampaignUseCase) Audit(ctx context.Context, id domain.CampaignID) (*port.CampaignView, error) {
	view, err := u.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if want := view.Campaign.ExpectedHeldBalance(); view.HeldBalance != want {
		return view, &domain.Error{
			Code:    domain.CodeLedgerMismatch,
			Message: fmt.Sprintf("held balance %d, expected %d", view.HeldBalance, want),
		}
	}
	return view, nil
}

// History returns the journal of a campaign. Unknown campaigns fail with
// domain.ErrRecordNotFound rather than returning an empty journal.
func (u *CampaignUseCase) History(ctx context.Context, id domain.CampaignID) ([]domain.JournalEntry, error) {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return u.ledger.History(ctx, id)
}

// Balance returns the balance of the identity's account.
func (u *CampaignUseCase) Balance(ctx context.Context, who domain.Identity) (uint64, error) {
	if who.IsZero() {
		return 0, domain.ErrUnauthenticated
	}
	return u.ledger.Balance(ctx, who.Account())
}

// Deposit credits the identity's account and returns the new balance.
func (u *CampaignUseCase) Deposit(ctx context.Context, who domain.Identity, amount uint64) (_ uint64, err error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.Deposit")
	defer func() { endSpan(span, err) }()

	if who.IsZero() {
		return 0, domain.ErrUnauthenticated
	}
	if amount == 0 {
		return 0, domain.ErrInvalidAmount
	}
	if err = u.ledger.Deposit(ctx, who.Account(), amount); err != nil {
		return 0, err
	}
	return u.ledger.Balance(ctx, who.Account())
}

// endSpan records err on span, if any, and ends it. Business rejections
// are recorded with their code so traces can be filtered by outcome.
func endSpan(span trace.Span, err error) {
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			span.SetAttributes(attribute.String("error.code", string(de.Code)))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
