package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// dbtx is the subset of pgxpool.Pool and pgx.Tx used by the repository.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CampaignRepository implements port.CampaignRepository and port.Ledger
// using pgxpool for PostgreSQL. Amounts are stored as NUMERIC(20,0) so the
// full uint64 range round-trips; they travel as decimal text on the wire.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

var _ port.Ledger = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a new campaign. An existing id yields
// domain.ErrDuplicateCampaign and leaves the stored record untouched.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO campaigns (id, title, goal, amount_raised, is_active, owner, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		string(c.ID),
		c.Title,
		formatAmount(c.Goal),
		formatAmount(c.AmountRaised),
		c.IsActive,
		string(c.Owner),
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateCampaign
	}
	return nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id domain.CampaignID) (domain.Campaign, error) {
	return getCampaign(ctx, r.pool, id, false)
}

// Update locks the campaign row, runs fn with a ledger bound to the same
// transaction and persists the returned record. Nothing is written when fn
// fails.
func (r *CampaignRepository) Update(ctx context.Context, id domain.CampaignID, fn port.UpdateFunc) (_ domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return domain.Campaign{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// lock campaign
	current, err := getCampaign(ctx, tx, id, true)
	if err != nil {
		return domain.Campaign{}, err
	}

	next, err := fn(ctx, current, &ledger{q: tx})
	if err != nil {
		return domain.Campaign{}, err
	}
	if next.ID != id {
		err = fmt.Errorf("update changed campaign id from %q to %q", id, next.ID)
		return domain.Campaign{}, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE campaigns
		SET amount_raised = $1::numeric, is_active = $2, updated_at = $3
		WHERE id = $4`,
		formatAmount(next.AmountRaised),
		next.IsActive,
		next.UpdatedAt,
		string(id),
	)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("update campaign: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.Campaign{}, err
	}
	return next, nil
}

func (r *CampaignRepository) Transfer(ctx context.Context, t domain.Transfer) error {
	return r.inTx(ctx, func(l *ledger) error { return l.Transfer(ctx, t) })
}

func (r *CampaignRepository) Deposit(ctx context.Context, account domain.AccountID, amount uint64) error {
	return r.inTx(ctx, func(l *ledger) error { return l.Deposit(ctx, account, amount) })
}

func (r *CampaignRepository) Balance(ctx context.Context, account domain.AccountID) (uint64, error) {
	return (&ledger{q: r.pool}).Balance(ctx, account)
}

func (r *CampaignRepository) History(ctx context.Context, campaign domain.CampaignID) ([]domain.JournalEntry, error) {
	return (&ledger{q: r.pool}).History(ctx, campaign)
}

func (r *CampaignRepository) inTx(ctx context.Context, fn func(l *ledger) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(&ledger{q: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func getCampaign(ctx context.Context, q dbtx, id domain.CampaignID, forUpdate bool) (domain.Campaign, error) {
	query := `
		SELECT id, title, goal::text, amount_raised::text, is_active, owner, created_at, updated_at
		FROM campaigns
		WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		c            domain.Campaign
		cid, owner   string
		goal, raised string
	)
	err := q.QueryRow(ctx, query, string(id)).
		Scan(&cid, &c.Title, &goal, &raised, &c.IsActive, &owner, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrRecordNotFound
	}
	if err != nil {
		return domain.Campaign{}, err
	}

	if c.Goal, err = parseAmount(goal); err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %s goal: %w", cid, err)
	}
	if c.AmountRaised, err = parseAmount(raised); err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %s amount_raised: %w", cid, err)
	}
	c.ID = domain.CampaignID(cid)
	c.Owner = domain.Identity(owner)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
