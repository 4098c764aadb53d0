package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Store is a port.CampaignRepository and port.Ledger backed by SQLite.
//
// Amounts are kept as decimal TEXT because SQLite integers are signed
// 64-bit and balances use the full uint64 range. All arithmetic happens in
// Go inside a transaction.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Ensure Store implements the interfaces.
var _ port.CampaignRepository = (*Store)(nil)

var _ port.Ledger = (*Store)(nil)

// Open opens a SQLite database at path using the modernc driver. The pool
// is limited to one connection so transactions never contend for the
// database lock and ":memory:" databases survive across calls.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	return db, nil
}

// NewStore initializes the required schema in the given database and
// returns a new Store.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS campaigns (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			goal TEXT NOT NULL,
			amount_raised TEXT NOT NULL,
			is_active INTEGER NOT NULL,
			owner TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS accounts (
			id TEXT PRIMARY KEY,
			balance TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS transfers (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL,
			campaign_id TEXT NOT NULL DEFAULT '',
			from_account TEXT NOT NULL DEFAULT '',
			to_account TEXT NOT NULL,
			amount TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS transfers_campaign_idx ON transfers (campaign_id, seq);`,
	)
	return err
}

func (s *Store) Create(ctx context.Context, c domain.Campaign) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO campaigns (id, title, goal, amount_raised, is_active, owner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		string(c.ID),
		c.Title,
		formatAmount(c.Goal),
		formatAmount(c.AmountRaised),
		c.IsActive,
		string(c.Owner),
		c.CreatedAt.UnixNano(),
		c.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrDuplicateCampaign
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id domain.CampaignID) (domain.Campaign, error) {
	return getCampaign(ctx, s.db, id)
}

func (s *Store) Update(ctx context.Context, id domain.CampaignID, fn port.UpdateFunc) (_ domain.Campaign, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Campaign{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	current, err := getCampaign(ctx, tx, id)
	if err != nil {
		return domain.Campaign{}, err
	}

	next, err := fn(ctx, current, &ledger{q: tx, now: s.now})
	if err != nil {
		return domain.Campaign{}, err
	}
	if next.ID != id {
		err = fmt.Errorf("update changed campaign id from %q to %q", id, next.ID)
		return domain.Campaign{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE campaigns
		SET amount_raised = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		formatAmount(next.AmountRaised),
		next.IsActive,
		next.UpdatedAt.UnixNano(),
		string(id),
	)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("update campaign: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return domain.Campaign{}, err
	}
	return next, nil
}

func (s *Store) Transfer(ctx context.Context, t domain.Transfer) error {
	return s.inTx(ctx, func(l *ledger) error { return l.Transfer(ctx, t) })
}

func (s *Store) Deposit(ctx context.Context, account domain.AccountID, amount uint64) error {
	return s.inTx(ctx, func(l *ledger) error { return l.Deposit(ctx, account, amount) })
}

func (s *Store) Balance(ctx context.Context, account domain.AccountID) (uint64, error) {
	return (&ledger{q: s.db, now: s.now}).Balance(ctx, account)
}

func (s *Store) History(ctx context.Context, campaign domain.CampaignID) ([]domain.JournalEntry, error) {
	return (&ledger{q: s.db, now: s.now}).History(ctx, campaign)
}

func (s *Store) inTx(ctx context.Context, fn func(l *ledger) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(&ledger{q: tx, now: s.now}); err != nil {
		return err
	}
	return tx.Commit()
}

func getCampaign(ctx context.Context, q querier, id domain.CampaignID) (domain.Campaign, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, title, goal, amount_raised, is_active, owner, created_at, updated_at
		FROM campaigns
		WHERE id = ?`,
		string(id),
	)

	var (
		c                   domain.Campaign
		cid, owner          string
		goal, raised        string
		createdAt, updateAt int64
	)
	if err := row.Scan(&cid, &c.Title, &goal, &raised, &c.IsActive, &owner, &createdAt, &updateAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Campaign{}, domain.ErrRecordNotFound
		}
		return domain.Campaign{}, err
	}

	var err error
	if c.Goal, err = parseAmount(goal); err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %s goal: %w", cid, err)
	}
	if c.AmountRaised, err = parseAmount(raised); err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %s amount_raised: %w", cid, err)
	}
	c.ID = domain.CampaignID(cid)
	c.Owner = domain.Identity(owner)
	c.CreatedAt = time.Unix(0, createdAt).UTC()
	c.UpdatedAt = time.Unix(0, updateAt).UTC()
	return c, nil
}
