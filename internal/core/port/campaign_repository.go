package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// UpdateFunc receives an exclusively locked, current copy of a campaign
// and a ledger bound to the same unit of work. The returned campaign is
// persisted only if the function returns a nil error; otherwise neither
// the record nor any balance touched through ledger changes.
type UpdateFunc func(ctx context.Context, current domain.Campaign, ledger Ledger) (domain.Campaign, error)

// CampaignRepository is the record store for campaigns. It is an outbound
// port in hexagonal architecture. Implementations must serialize
// concurrent updates of the same record.
type CampaignRepository interface {
	// Create stores a new campaign. It fails with domain.ErrDuplicateCampaign
	// when a record already exists under the same id.
	Create(ctx context.Context, c domain.Campaign) error
	// Get returns a campaign by id or domain.ErrRecordNotFound.
	Get(ctx context.Context, id domain.CampaignID) (domain.Campaign, error)
	// Update runs fn inside a single atomic unit and commits the returned
	// campaign together with every ledger movement fn made.
	Update(ctx context.Context, id domain.CampaignID, fn UpdateFunc) (domain.Campaign, error)
}

// Ledger moves value between accounts. Every movement is all-or-nothing.
type Ledger interface {
	// Transfer moves t.Amount from t.From to t.To. It fails with
	// domain.ErrInsufficientFunds when the source balance is too low, in
	// which case neither balance changes.
	Transfer(ctx context.Context, t domain.Transfer) error
	// Balance returns the balance of an account. Unknown accounts hold zero.
	Balance(ctx context.Context, account domain.AccountID) (uint64, error)
	// Deposit credits an account with funds entering the system.
	Deposit(ctx context.Context, account domain.AccountID, amount uint64) error
	// History returns the journal of transfers made on behalf of a
	// campaign, oldest first.
	History(ctx context.Context, campaign domain.CampaignID) ([]domain.JournalEntry, error)
}

// Authenticator resolves a bearer credential into an authenticated identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}
