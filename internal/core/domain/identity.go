package domain

import "strings"

// Identity is an authenticated principal. Values only ever come from the
// identity provider, never from request bodies.
type Identity string

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool { return strings.TrimSpace(string(i)) == "" }

// Account returns the ledger account owned by the identity.
func (i Identity) Account() AccountID { return AccountID(userAccountPrefix + string(i)) }

// AccountID addresses a balance in the ledger.
type AccountID string

const (
	userAccountPrefix     = "user:"
	campaignAccountPrefix = "campaign:"
)

// IsCampaign reports whether the account is a campaign escrow account.
func (a AccountID) IsCampaign() bool { return strings.HasPrefix(string(a), campaignAccountPrefix) }
