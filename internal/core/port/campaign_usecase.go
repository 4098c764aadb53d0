package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// engine. This interface represents the primary port into the application
// domain. Mock implementations can be generated from this interface for
// testing. The caller identity always comes from the Authenticator.
type CampaignUseCase interface {
	// CreateCampaign stores a new active campaign owned by creator.
	CreateCampaign(ctx context.Context, req CreateCampaignReq, creator domain.Identity) (*domain.Campaign, error)

	// GetCampaign returns the campaign and its held balance.
	GetCampaign(ctx context.Context, id domain.CampaignID) (*CampaignView, error)

	// Contribute moves amount from the contributor into the campaign and
	// raises the counter in the same unit. On any error the record is
	// unchanged.
	Contribute(ctx context.Context, id domain.CampaignID, contributor domain.Identity, amount uint64) (*domain.Campaign, error)

	// Withdraw pays the raised amount to the owner and closes the campaign.
	Withdraw(ctx context.Context, id domain.CampaignID, caller domain.Identity) (*domain.Campaign, error)

	// Audit checks that the escrow balance matches the record and returns
	// domain.ErrLedgerMismatch when it does not.
	Audit(ctx context.Context, id domain.CampaignID) (*CampaignView, error)

	// History returns the contributions and withdrawal of a campaign.
	History(ctx context.Context, id domain.CampaignID) ([]domain.JournalEntry, error)

	// Balance returns the ledger balance of the identity's account.
	Balance(ctx context.Context, who domain.Identity) (uint64, error)

	// Deposit credits the identity's account.
	Deposit(ctx context.Context, who domain.Identity, amount uint64) (uint64, error)
}

// CreateCampaignReq carries the untrusted part of a creation request.
// The owner is deliberately absent.
type CreateCampaignReq struct {
	ID    domain.CampaignID
	Title string
	Goal  uint64
}

// CampaignView is a campaign together with the balance of its escrow
// account at read time.
type CampaignView struct {
	Campaign    domain.Campaign
	HeldBalance uint64
}
