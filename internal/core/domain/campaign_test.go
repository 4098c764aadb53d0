package domain

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestCampaign(t *testing.T, goal uint64) Campaign {
	t.Helper()
	c, err := NewCampaign("whales", "Save the Whales", goal, "alice", testNow)
	require.NoError(t, err)
	return c
}

func TestNewCampaign(t *testing.T) {
	c := newTestCampaign(t, 1000)

	assert.Equal(t, CampaignID("whales"), c.ID)
	assert.Equal(t, "Save the Whales", c.Title)
	assert.Equal(t, uint64(1000), c.Goal)
	assert.Zero(t, c.AmountRaised)
	assert.True(t, c.IsActive)
	assert.Equal(t, Identity("alice"), c.Owner)
	assert.Equal(t, StatusActive, c.Status())
	assert.Equal(t, testNow, c.CreatedAt)
}

func TestNewCampaign_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		id      CampaignID
		title   string
		goal    uint64
		creator Identity
		want    error
	}{
		{"zero goal", "c1", "title", 0, "alice", ErrInvalidGoal},
		{"empty id", "", "title", 10, "alice", ErrInvalidCampaignID},
		{"id with slash", "a/b", "title", 10, "alice", ErrInvalidCampaignID},
		{"id too long", CampaignID(strings.Repeat("a", MaxCampaignIDLength+1)), "title", 10, "alice", ErrInvalidCampaignID},
		{"blank title", "c1", "   ", 10, "alice", ErrInvalidTitle},
		{"title too long", "c1", strings.Repeat("x", MaxTitleLength+1), 10, "alice", ErrInvalidTitle},
		{"title not utf8", "c1", "\xff\xfe", 10, "alice", ErrInvalidTitle},
		{"anonymous creator", "c1", "title", 10, "", ErrUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCampaign(tt.id, tt.title, tt.goal, tt.creator, testNow)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewCampaign_MaxTitleAccepted(t *testing.T) {
	_, err := NewCampaign("c1", strings.Repeat("x", MaxTitleLength), 1, "alice", testNow)
	require.NoError(t, err)
}

func TestRecordSize(t *testing.T) {
	assert.Equal(t, 8+4+15+4+8+8+1+32, RecordSize("Save the Whales"))
}

func TestContribute(t *testing.T) {
	c := newTestCampaign(t, 1000)

	next, tr, err := c.Contribute("bob", 400)
	require.NoError(t, err)

	assert.Equal(t, uint64(400), next.AmountRaised)
	assert.True(t, next.IsActive)
	assert.Zero(t, c.AmountRaised, "receiver must not be mutated")
	assert.Equal(t, Transfer{
		Kind:       TransferContribution,
		CampaignID: "whales",
		From:       "user:bob",
		To:         "campaign:whales",
		Amount:     400,
	}, tr)
}

func TestContribute_Rejects(t *testing.T) {
	active := newTestCampaign(t, 1000)
	inactive := active
	inactive.IsActive = false
	full := active
	full.AmountRaised = math.MaxUint64 - 5

	tests := []struct {
		name   string
		c      Campaign
		who    Identity
		amount uint64
		want   error
	}{
		{"inactive", inactive, "bob", 10, ErrCampaignInactive},
		{"inactive wins over zero amount", inactive, "bob", 0, ErrCampaignInactive},
		{"zero amount", active, "bob", 0, ErrInvalidAmount},
		{"anonymous", active, "", 10, ErrUnauthenticated},
		{"overflow", full, "bob", 6, ErrAmountOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, tr, err := tt.c.Contribute(tt.who, tt.amount)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.c, next)
			assert.Zero(t, tr)
		})
	}
}

func TestContribute_UpToMaxUint64(t *testing.T) {
	c := newTestCampaign(t, 1)
	c.AmountRaised = math.MaxUint64 - 5

	next, _, err := c.Contribute("bob", 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), next.AmountRaised)
}

func TestWithdraw(t *testing.T) {
	c := newTestCampaign(t, 500)
	c.AmountRaised = 700

	next, tr, err := c.Withdraw("alice")
	require.NoError(t, err)

	assert.False(t, next.IsActive)
	assert.Equal(t, StatusWithdrawn, next.Status())
	assert.Equal(t, uint64(700), next.AmountRaised)
	assert.Equal(t, Transfer{
		Kind:       TransferWithdrawal,
		CampaignID: "whales",
		From:       "campaign:whales",
		To:         "user:alice",
		Amount:     700,
	}, tr)
}

func TestWithdraw_CheckOrder(t *testing.T) {
	under := newTestCampaign(t, 1000)
	under.AmountRaised = 500
	reached := newTestCampaign(t, 500)
	reached.AmountRaised = 500
	closed := reached
	closed.IsActive = false

	tests := []struct {
		name   string
		c      Campaign
		caller Identity
		want   error
	}{
		{"inactive owner", closed, "alice", ErrCampaignInactive},
		{"inactive stranger", closed, "mallory", ErrCampaignInactive},
		{"goal not reached owner", under, "alice", ErrGoalNotReached},
		{"goal not reached stranger", under, "mallory", ErrGoalNotReached},
		{"stranger", reached, "mallory", ErrUnauthorizedAccess},
		{"anonymous", reached, "", ErrUnauthorizedAccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, tr, err := tt.c.Withdraw(tt.caller)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.c, next)
			assert.Zero(t, tr)
		})
	}
}

func TestExpectedHeldBalance(t *testing.T) {
	c := newTestCampaign(t, 10)
	c.AmountRaised = 42
	assert.Equal(t, uint64(42), c.ExpectedHeldBalance())

	c.IsActive = false
	assert.Zero(t, c.ExpectedHeldBalance())
}

// Scenario A: two contributions overshoot the goal and the owner withdraws.
func TestScenario_ContributeTwiceThenWithdraw(t *testing.T) {
	c := newTestCampaign(t, 1000)

	c, _, err := c.Contribute("bob", 400)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), c.AmountRaised)
	assert.True(t, c.IsActive)

	c, _, err = c.Contribute("carol", 700)
	require.NoError(t, err)
	assert.Equal(t, uint64(1100), c.AmountRaised)

	c, tr, err := c.Withdraw("alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1100), tr.Amount)
	assert.Equal(t, AccountID("user:alice"), tr.To)
	assert.False(t, c.IsActive)
}

// Scenario B: goal check runs before the owner check.
func TestScenario_StrangerBeforeGoal(t *testing.T) {
	c := newTestCampaign(t, 1000)
	c, _, err := c.Contribute("bob", 500)
	require.NoError(t, err)

	after, _, err := c.Withdraw("mallory")
	require.ErrorIs(t, err, ErrGoalNotReached)
	assert.Equal(t, uint64(500), after.AmountRaised)
	assert.True(t, after.IsActive)
}

// Scenario C: goal met but caller is not the owner.
func TestScenario_StrangerAfterGoal(t *testing.T) {
	c := newTestCampaign(t, 500)
	c, _, err := c.Contribute("bob", 500)
	require.NoError(t, err)

	after, _, err := c.Withdraw("mallory")
	require.ErrorIs(t, err, ErrUnauthorizedAccess)
	assert.True(t, after.IsActive)
	assert.Equal(t, uint64(500), after.AmountRaised)
}

// Scenario D: withdrawing twice.
func TestScenario_DoubleWithdraw(t *testing.T) {
	c := newTestCampaign(t, 500)
	c, _, err := c.Contribute("bob", 500)
	require.NoError(t, err)
	c, _, err = c.Withdraw("alice")
	require.NoError(t, err)

	_, _, err = c.Withdraw("alice")
	require.ErrorIs(t, err, ErrCampaignInactive)
}

func TestErrors(t *testing.T) {
	wrapped := Wrap(CodeTransferFailed, "contribution transfer failed", ErrInsufficientFunds)

	assert.ErrorIs(t, wrapped, ErrTransferFailed)
	assert.ErrorIs(t, wrapped, ErrInsufficientFunds)
	assert.NotErrorIs(t, wrapped, ErrCampaignInactive)
	assert.Equal(t, CodeTransferFailed, CodeOf(wrapped))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Contains(t, wrapped.Error(), "insufficient funds")

	assert.True(t, Retryable(wrapped))
	assert.False(t, Retryable(ErrUnauthorizedAccess))
	assert.False(t, Retryable(ErrGoalNotReached))
}
