package domain

import "time"

// TransferKind labels a ledger movement in the transfer journal.
type TransferKind string

const (
	TransferDeposit      TransferKind = "deposit"
	TransferContribution TransferKind = "contribution"
	TransferWithdrawal   TransferKind = "withdrawal"
)

// Transfer is an instruction to move Amount units from one account to
// another. The engine produces it, the ledger executes it all-or-nothing.
type Transfer struct {
	Kind       TransferKind
	CampaignID CampaignID
	From       AccountID
	To         AccountID
	Amount     uint64
}

// JournalEntry is an executed transfer as recorded by a ledger.
type JournalEntry struct {
	ID        string
	Transfer  Transfer
	CreatedAt time.Time
}
