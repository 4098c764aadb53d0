// Package storetest holds the behaviour every campaign store must share.
// Adapter packages call Run from their own tests with a constructor for a
// fresh, empty store.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Store is what a storage adapter provides: the record store and the
// ledger over the same backend.
type Store interface {
	port.CampaignRepository
	port.Ledger
}

var created = time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

func newCampaign(t *testing.T, id domain.CampaignID, goal uint64) domain.Campaign {
	t.Helper()
	c, err := domain.NewCampaign(id, "Save the Whales", goal, "alice", created)
	require.NoError(t, err)
	return c
}

// Run executes the conformance suite against stores built by newStore.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("CreateGet", func(t *testing.T) { testCreateGet(t, newStore(t)) })
	t.Run("CreateDuplicate", func(t *testing.T) { testCreateDuplicate(t, newStore(t)) })
	t.Run("GetNotFound", func(t *testing.T) { testGetNotFound(t, newStore(t)) })
	t.Run("UpdateCommitsRecordAndTransfer", func(t *testing.T) { testUpdateCommits(t, newStore(t)) })
	t.Run("UpdateRollsBackOnError", func(t *testing.T) { testUpdateRollsBack(t, newStore(t)) })
	t.Run("UpdateNotFound", func(t *testing.T) { testUpdateNotFound(t, newStore(t)) })
	t.Run("TransferInsufficientFunds", func(t *testing.T) { testTransferInsufficient(t, newStore(t)) })
	t.Run("DepositAndBalance", func(t *testing.T) { testDepositAndBalance(t, newStore(t)) })
	t.Run("LargeAmounts", func(t *testing.T) { testLargeAmounts(t, newStore(t)) })
	t.Run("History", func(t *testing.T) { testHistory(t, newStore(t)) })
	t.Run("ConcurrentUpdates", func(t *testing.T) { testConcurrentUpdates(t, newStore(t)) })
}

func testCreateGet(t *testing.T, s Store) {
	ctx := context.Background()
	c := newCampaign(t, "whales", 1000)

	require.NoError(t, s.Create(ctx, c))

	got, err := s.Get(ctx, "whales")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, c.Title, got.Title)
	assert.Equal(t, c.Goal, got.Goal)
	assert.Zero(t, got.AmountRaised)
	assert.True(t, got.IsActive)
	assert.Equal(t, c.Owner, got.Owner)
	assert.True(t, c.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", c.CreatedAt, got.CreatedAt)
}

func testCreateDuplicate(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newCampaign(t, "whales", 1000)))

	other := newCampaign(t, "whales", 5)
	other.Owner = "mallory"
	err := s.Create(ctx, other)
	require.ErrorIs(t, err, domain.ErrDuplicateCampaign)

	got, err := s.Get(ctx, "whales")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("alice"), got.Owner)
	assert.Equal(t, uint64(1000), got.Goal)
}

func testGetNotFound(t *testing.T, s Store) {
	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func testUpdateCommits(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newCampaign(t, "whales", 1000)))
	require.NoError(t, s.Deposit(ctx, "user:bob", 500))

	updated, err := s.Update(ctx, "whales", func(ctx context.Context, cur domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
		next, tr, err := cur.Contribute("bob", 400)
		if err != nil {
			return cur, err
		}
		return next, ledger.Transfer(ctx, tr)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(400), updated.AmountRaised)

	got, err := s.Get(ctx, "whales")
	require.NoError(t, err)
	assert.Equal(t, uint64(400), got.AmountRaised)

	assertBalance(t, s, "user:bob", 100)
	assertBalance(t, s, "campaign:whales", 400)
}

func testUpdateRollsBack(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newCampaign(t, "whales", 1000)))
	require.NoError(t, s.Deposit(ctx, "user:bob", 500))

	boom := errors.New("boom")
	_, err := s.Update(ctx, "whales", func(ctx context.Context, cur domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
		_, tr, err := cur.Contribute("bob", 300)
		if err != nil {
			return cur, err
		}
		if err = ledger.Transfer(ctx, tr); err != nil {
			return cur, err
		}
		held, err := ledger.Balance(ctx, "campaign:whales")
		if err != nil {
			return cur, err
		}
		if held != 300 {
			return cur, fmt.Errorf("staged balance %d, want 300", held)
		}
		return cur, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := s.Get(ctx, "whales")
	require.NoError(t, err)
	assert.Zero(t, got.AmountRaised)
	assertBalance(t, s, "user:bob", 500)
	assertBalance(t, s, "campaign:whales", 0)

	history, err := s.History(ctx, "whales")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func testUpdateNotFound(t *testing.T, s Store) {
	called := false
	_, err := s.Update(context.Background(), "missing", func(_ context.Context, cur domain.Campaign, _ port.Ledger) (domain.Campaign, error) {
		called = true
		return cur, nil
	})
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.False(t, called)
}

func testTransferInsufficient(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Deposit(ctx, "user:bob", 50))

	err := s.Transfer(ctx, domain.Transfer{
		Kind:   domain.TransferContribution,
		From:   "user:bob",
		To:     "campaign:whales",
		Amount: 51,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assertBalance(t, s, "user:bob", 50)
	assertBalance(t, s, "campaign:whales", 0)

	err = s.Transfer(ctx, domain.Transfer{
		Kind:   domain.TransferContribution,
		From:   "user:nobody",
		To:     "campaign:whales",
		Amount: 1,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func testDepositAndBalance(t *testing.T, s Store) {
	ctx := context.Background()
	assertBalance(t, s, "user:new", 0)

	require.NoError(t, s.Deposit(ctx, "user:new", 10))
	require.NoError(t, s.Deposit(ctx, "user:new", 15))
	assertBalance(t, s, "user:new", 25)

	require.NoError(t, s.Transfer(ctx, domain.Transfer{From: "user:new", To: "user:other", Amount: 25}))
	assertBalance(t, s, "user:new", 0)
	assertBalance(t, s, "user:other", 25)
}

func testLargeAmounts(t *testing.T, s Store) {
	ctx := context.Background()
	c := newCampaign(t, "big", math.MaxUint64)
	require.NoError(t, s.Create(ctx, c))
	require.NoError(t, s.Deposit(ctx, "user:whale", math.MaxUint64))

	err := s.Deposit(ctx, "user:whale", 1)
	require.ErrorIs(t, err, domain.ErrAmountOverflow)
	assertBalance(t, s, "user:whale", math.MaxUint64)

	updated, err := s.Update(ctx, "big", func(ctx context.Context, cur domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
		next, tr, err := cur.Contribute("whale", math.MaxUint64)
		if err != nil {
			return cur, err
		}
		return next, ledger.Transfer(ctx, tr)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), updated.AmountRaised)

	got, err := s.Get(ctx, "big")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got.Goal)
	assert.Equal(t, uint64(math.MaxUint64), got.AmountRaised)
	assertBalance(t, s, "campaign:big", math.MaxUint64)
}

func testHistory(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newCampaign(t, "whales", 10)))
	require.NoError(t, s.Create(ctx, newCampaign(t, "owls", 10)))
	require.NoError(t, s.Deposit(ctx, "user:bob", 100))

	contribute := func(id domain.CampaignID, amount uint64) {
		_, err := s.Update(ctx, id, func(ctx context.Context, cur domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
			next, tr, err := cur.Contribute("bob", amount)
			if err != nil {
				return cur, err
			}
			return next, ledger.Transfer(ctx, tr)
		})
		require.NoError(t, err)
	}
	contribute("whales", 4)
	contribute("owls", 7)
	contribute("whales", 6)

	_, err := s.Update(ctx, "whales", func(ctx context.Context, cur domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
		next, tr, err := cur.Withdraw("alice")
		if err != nil {
			return cur, err
		}
		return next, ledger.Transfer(ctx, tr)
	})
	require.NoError(t, err)

	history, err := s.History(ctx, "whales")
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, domain.TransferContribution, history[0].Transfer.Kind)
	assert.Equal(t, uint64(4), history[0].Transfer.Amount)
	assert.Equal(t, domain.AccountID("user:bob"), history[0].Transfer.From)
	assert.Equal(t, uint64(6), history[1].Transfer.Amount)
	assert.Equal(t, domain.TransferWithdrawal, history[2].Transfer.Kind)
	assert.Equal(t, uint64(10), history[2].Transfer.Amount)
	assert.Equal(t, domain.AccountID("user:alice"), history[2].Transfer.To)
	for _, e := range history {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, domain.CampaignID("whales"), e.Transfer.CampaignID)
	}

	assertBalance(t, s, "campaign:whales", 0)
	assertBalance(t, s, "campaign:owls", 7)
	assertBalance(t, s, "user:alice", 10)
}

func testConcurrentUpdates(t *testing.T, s Store) {
	ctx := context.Background()
	const donors = 20
	require.NoError(t, s.Create(ctx, newCampaign(t, "whales", 1000)))
	for i := 0; i < donors; i++ {
		require.NoError(t, s.Deposit(ctx, domain.Identity(fmt.Sprintf("donor-%d", i)).Account(), 5))
	}

	var wg sync.WaitGroup
	errs := make(chan error, donors)
	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			who := domain.Identity(fmt.Sprintf("donor-%d", i))
			_, err := s.Update(ctx, "whales", func(ctx context.Context, cur domain.Campaign, ledger port.Ledger) (domain.Campaign, error) {
				next, tr, err := cur.Contribute(who, 5)
				if err != nil {
					return cur, err
				}
				return next, ledger.Transfer(ctx, tr)
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := s.Get(ctx, "whales")
	require.NoError(t, err)
	assert.Equal(t, uint64(donors*5), got.AmountRaised)
	assertBalance(t, s, "campaign:whales", donors*5)
}

func assertBalance(t *testing.T, s Store, account domain.AccountID, want uint64) {
	t.Helper()
	got, err := s.Balance(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, want, got, "balance of %s", account)
}
