package memory

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Store is a goroutine-safe implementation of port.CampaignRepository and
// port.Ledger backed by maps. A single mutex covers records and balances,
// which makes every Update trivially atomic.
type Store struct {
	mu        sync.Mutex
	campaigns map[domain.CampaignID]domain.Campaign
	balances  map[domain.AccountID]uint64
	journal   []domain.JournalEntry
	now       func() time.Time
}

// Ensure Store implements the interfaces.
var _ port.CampaignRepository = (*Store)(nil)

var _ port.Ledger = (*Store)(nil)

// NewStore creates a new empty Store.
func NewStore() *Store {
	return &Store{
		campaigns: make(map[domain.CampaignID]domain.Campaign),
		balances:  make(map[domain.AccountID]uint64),
		now:       time.Now,
	}
}

func (s *Store) Create(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[c.ID]; ok {
		return domain.ErrDuplicateCampaign
	}
	s.campaigns[c.ID] = c
	return nil
}

func (s *Store) Get(_ context.Context, id domain.CampaignID) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.ErrRecordNotFound
	}
	return c, nil
}

func (s *Store) Update(ctx context.Context, id domain.CampaignID, fn port.UpdateFunc) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.ErrRecordNotFound
	}

	tx := s.begin()
	next, err := fn(ctx, current, tx)
	if err != nil {
		return domain.Campaign{}, err
	}
	if next.ID != id {
		return domain.Campaign{}, fmt.Errorf("update changed campaign id from %q to %q", id, next.ID)
	}

	s.commit(tx)
	s.campaigns[id] = next
	return next, nil
}

func (s *Store) Transfer(ctx context.Context, t domain.Transfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.begin()
	if err := tx.Transfer(ctx, t); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}

func (s *Store) Balance(_ context.Context, account domain.AccountID) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balances[account], nil
}

func (s *Store) Deposit(ctx context.Context, account domain.AccountID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.begin()
	if err := tx.Deposit(ctx, account, amount); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}

func (s *Store) History(_ context.Context, campaign domain.CampaignID) ([]domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []domain.JournalEntry
	for _, e := range s.journal {
		if e.Transfer.CampaignID == campaign {
			result = append(result, e)
		}
	}
	return result, nil
}

// begin must be called with s.mu held.
func (s *Store) begin() *stagedLedger {
	return &stagedLedger{
		base:    s.balances,
		journal: s.journal,
		pending: make(map[domain.AccountID]uint64),
		now:     s.now,
	}
}

// commit must be called with s.mu held.
func (s *Store) commit(tx *stagedLedger) {
	for account, balance := range tx.pending {
		s.balances[account] = balance
	}
	s.journal = append(s.journal, tx.entries...)
}

// stagedLedger buffers balance changes made inside one unit of work. The
// owning Store applies them only when the unit succeeds. It never takes
// the store lock; the caller already holds it.
type stagedLedger struct {
	base    map[domain.AccountID]uint64
	journal []domain.JournalEntry
	pending map[domain.AccountID]uint64
	entries []domain.JournalEntry
	now     func() time.Time
}

func (l *stagedLedger) balance(account domain.AccountID) uint64 {
	if b, ok := l.pending[account]; ok {
		return b
	}
	return l.base[account]
}

func (l *stagedLedger) record(t domain.Transfer) {
	l.entries = append(l.entries, domain.JournalEntry{
		ID:        uuid.NewString(),
		Transfer:  t,
		CreatedAt: l.now().UTC(),
	})
}

func (l *stagedLedger) Transfer(_ context.Context, t domain.Transfer) error {
	from := l.balance(t.From)
	if from < t.Amount {
		return domain.ErrInsufficientFunds
	}
	if t.From != t.To {
		to := l.balance(t.To)
		if to > math.MaxUint64-t.Amount {
			return domain.ErrAmountOverflow
		}
		l.pending[t.From] = from - t.Amount
		l.pending[t.To] = to + t.Amount
	}
	l.record(t)
	return nil
}

func (l *stagedLedger) Balance(_ context.Context, account domain.AccountID) (uint64, error) {
	return l.balance(account), nil
}

func (l *stagedLedger) Deposit(_ context.Context, account domain.AccountID, amount uint64) error {
	b := l.balance(account)
	if b > math.MaxUint64-amount {
		return domain.ErrAmountOverflow
	}
	l.pending[account] = b + amount
	l.record(domain.Transfer{Kind: domain.TransferDeposit, To: account, Amount: amount})
	return nil
}

func (l *stagedLedger) History(_ context.Context, campaign domain.CampaignID) ([]domain.JournalEntry, error) {
	var result []domain.JournalEntry
	for _, e := range append(l.journal[:len(l.journal):len(l.journal)], l.entries...) {
		if e.Transfer.CampaignID == campaign {
			result = append(result, e)
		}
	}
	return result, nil
}
