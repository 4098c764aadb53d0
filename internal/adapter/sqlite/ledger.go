package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ledger runs balance operations on q. Inside Store.Update q is the
// update's transaction.
type ledger struct {
	q   querier
	now func() time.Time
}

var _ port.Ledger = (*ledger)(nil)

func (l *ledger) Balance(ctx context.Context, account domain.AccountID) (uint64, error) {
	var raw string
	err := l.q.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE id = ?`, string(account)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return parseAmount(raw)
}

func (l *ledger) Transfer(ctx context.Context, t domain.Transfer) error {
	from, err := l.Balance(ctx, t.From)
	if err != nil {
		return err
	}
	if from < t.Amount {
		return domain.ErrInsufficientFunds
	}
	if t.From != t.To {
		to, err := l.Balance(ctx, t.To)
		if err != nil {
			return err
		}
		if to > math.MaxUint64-t.Amount {
			return domain.ErrAmountOverflow
		}
		if err = l.setBalance(ctx, t.From, from-t.Amount); err != nil {
			return err
		}
		if err = l.setBalance(ctx, t.To, to+t.Amount); err != nil {
			return err
		}
	}
	return l.record(ctx, t)
}

func (l *ledger) Deposit(ctx context.Context, account domain.AccountID, amount uint64) error {
	b, err := l.Balance(ctx, account)
	if err != nil {
		return err
	}
	if b > math.MaxUint64-amount {
		return domain.ErrAmountOverflow
	}
	if err = l.setBalance(ctx, account, b+amount); err != nil {
		return err
	}
	return l.record(ctx, domain.Transfer{Kind: domain.TransferDeposit, To: account, Amount: amount})
}

func (l *ledger) History(ctx context.Context, campaign domain.CampaignID) ([]domain.JournalEntry, error) {
	rows, err := l.q.QueryContext(ctx, `
		SELECT id, kind, campaign_id, from_account, to_account, amount, created_at
		FROM transfers
		WHERE campaign_id = ?
		ORDER BY seq`,
		string(campaign),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JournalEntry
	for rows.Next() {
		var (
			e                        domain.JournalEntry
			kind, cid, from, to, amt string
			createdAt                int64
		)
		if err = rows.Scan(&e.ID, &kind, &cid, &from, &to, &amt, &createdAt); err != nil {
			return nil, err
		}
		if e.Transfer.Amount, err = parseAmount(amt); err != nil {
			return nil, fmt.Errorf("transfer %s amount: %w", e.ID, err)
		}
		e.Transfer.Kind = domain.TransferKind(kind)
		e.Transfer.CampaignID = domain.CampaignID(cid)
		e.Transfer.From = domain.AccountID(from)
		e.Transfer.To = domain.AccountID(to)
		e.CreatedAt = time.Unix(0, createdAt).UTC()
		result = append(result, e)
	}
	return result, rows.Err()
}

func (l *ledger) setBalance(ctx context.Context, account domain.AccountID, balance uint64) error {
	_, err := l.q.ExecContext(ctx, `
		INSERT INTO accounts (id, balance) VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET balance = excluded.balance`,
		string(account),
		formatAmount(balance),
	)
	if err != nil {
		return fmt.Errorf("set balance of %s: %w", account, err)
	}
	return nil
}

func (l *ledger) record(ctx context.Context, t domain.Transfer) error {
	_, err := l.q.ExecContext(ctx, `
		INSERT INTO transfers (id, kind, campaign_id, from_account, to_account, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		string(t.Kind),
		string(t.CampaignID),
		string(t.From),
		string(t.To),
		formatAmount(t.Amount),
		l.now().UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("record transfer: %w", err)
	}
	return nil
}

func formatAmount(v uint64) string { return strconv.FormatUint(v, 10) }

func parseAmount(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }
