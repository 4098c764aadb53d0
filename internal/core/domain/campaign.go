package domain

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTitleLength bounds the title in bytes.
	MaxTitleLength = 256
	// MaxCampaignIDLength bounds the caller-chosen campaign key.
	MaxCampaignIDLength = 64
)

// CampaignID is the caller-chosen key a campaign record is stored under.
type CampaignID string

// Validate checks that the id is 1..MaxCampaignIDLength characters of
// [A-Za-z0-9_-].
func (id CampaignID) Validate() error {
	if len(id) == 0 || len(id) > MaxCampaignIDLength {
		return ErrInvalidCampaignID
	}
	for _, r := range string(id) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return ErrInvalidCampaignID
		}
	}
	return nil
}

// Account returns the escrow account holding the campaign's funds.
func (id CampaignID) Account() AccountID { return AccountID(campaignAccountPrefix + string(id)) }

// Status is the lifecycle state derived from IsActive.
type Status string

const (
	StatusActive    Status = "active"
	StatusWithdrawn Status = "withdrawn"
)

// Campaign is a single fundraising record. Amounts are integer units.
//
// Title, Goal and Owner never change after creation. AmountRaised only
// grows while IsActive is true, and IsActive flips to false exactly once.
type Campaign struct {
	ID           CampaignID
	Title        string
	Goal         uint64
	AmountRaised uint64
	IsActive     bool
	Owner        Identity
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCampaign validates the inputs and returns a fresh active campaign
// owned by creator. Uniqueness of id is the record store's concern.
func NewCampaign(id CampaignID, title string, goal uint64, creator Identity, now time.Time) (Campaign, error) {
	if err := id.Validate(); err != nil {
		return Campaign{}, err
	}
	if err := validateTitle(title); err != nil {
		return Campaign{}, err
	}
	if goal == 0 {
		return Campaign{}, ErrInvalidGoal
	}
	if creator.IsZero() {
		return Campaign{}, ErrUnauthenticated
	}
	now = now.UTC()
	return Campaign{
		ID:           id,
		Title:        title,
		Goal:         goal,
		AmountRaised: 0,
		IsActive:     true,
		Owner:        creator,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" || len(title) > MaxTitleLength || !utf8.ValidString(title) {
		return ErrInvalidTitle
	}
	return nil
}

// RecordSize is the number of bytes a record with the given title
// occupies: discriminator, length-prefixed title, goal, amount raised,
// active flag and a 32-byte owner key.
func RecordSize(title string) int {
	return 8 + 4 + len(title) + 4 + 8 + 8 + 1 + 32
}

// Status reports the lifecycle state of the campaign.
func (c Campaign) Status() Status {
	if c.IsActive {
		return StatusActive
	}
	return StatusWithdrawn
}

// GoalReached reports whether the raised amount covers the goal.
func (c Campaign) GoalReached() bool { return c.AmountRaised >= c.Goal }

// ExpectedHeldBalance is what the escrow account must hold for the
// record to be consistent with the ledger.
func (c Campaign) ExpectedHeldBalance() uint64 {
	if !c.IsActive {
		return 0
	}
	return c.AmountRaised
}

// Contribute returns the campaign as it must look once amount has been
// moved from the contributor into escrow, together with the transfer
// that has to succeed first. On error c is returned unchanged.
func (c Campaign) Contribute(contributor Identity, amount uint64) (Campaign, Transfer, error) {
	if !c.IsActive {
		return c, Transfer{}, ErrCampaignInactive
	}
	if amount == 0 {
		return c, Transfer{}, ErrInvalidAmount
	}
	if contributor.IsZero() {
		return c, Transfer{}, ErrUnauthenticated
	}
	if c.AmountRaised > math.MaxUint64-amount {
		return c, Transfer{}, ErrAmountOverflow
	}

	next := c
	next.AmountRaised = c.AmountRaised + amount
	return next, Transfer{
		Kind:       TransferContribution,
		CampaignID: c.ID,
		From:       contributor.Account(),
		To:         c.ID.Account(),
		Amount:     amount,
	}, nil
}

// Withdraw returns the campaign in its terminal state and the transfer
// paying the whole raised amount to the owner.
//
// Checks run in a fixed order and stop at the first failure: active,
// goal reached, caller is owner.
func (c Campaign) Withdraw(caller Identity) (Campaign, Transfer, error) {
	if !c.IsActive {
		return c, Transfer{}, ErrCampaignInactive
	}
	if !c.GoalReached() {
		return c, Transfer{}, ErrGoalNotReached
	}
	if caller.IsZero() || caller != c.Owner {
		return c, Transfer{}, ErrUnauthorizedAccess
	}

	next := c
	next.IsActive = false
	return next, Transfer{
		Kind:       TransferWithdrawal,
		CampaignID: c.ID,
		From:       c.ID.Account(),
		To:         c.Owner.Account(),
		Amount:     c.AmountRaised,
	}, nil
}
