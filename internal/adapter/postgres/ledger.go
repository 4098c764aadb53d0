package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// ledger moves balances over q. Inside CampaignRepository.Update q is the
// transaction that also holds the campaign row lock.
type ledger struct {
	q dbtx
}

var _ port.Ledger = (*ledger)(nil)

func (l *ledger) Balance(ctx context.Context, account domain.AccountID) (uint64, error) {
	var raw string
	err := l.q.QueryRow(ctx, `SELECT COALESCE((SELECT balance FROM accounts WHERE id = $1), 0)::text`, string(account)).Scan(&raw)
	if err != nil {
		return 0, err
	}
	return parseAmount(raw)
}

func (l *ledger) Transfer(ctx context.Context, t domain.Transfer) error {
	if t.From == t.To {
		b, err := l.Balance(ctx, t.From)
		if err != nil {
			return err
		}
		if b < t.Amount {
			return domain.ErrInsufficientFunds
		}
		return l.record(ctx, t)
	}

	if t.Amount > 0 {
		tag, err := l.q.Exec(ctx, `
			UPDATE accounts SET balance = balance - $2::numeric
			WHERE id = $1 AND balance >= $2::numeric`,
			string(t.From),
			formatAmount(t.Amount),
		)
		if err != nil {
			return fmt.Errorf("debit %s: %w", t.From, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientFunds
		}
	}
	if err := l.credit(ctx, t.To, t.Amount); err != nil {
		return err
	}
	return l.record(ctx, t)
}

func (l *ledger) Deposit(ctx context.Context, account domain.AccountID, amount uint64) error {
	if err := l.credit(ctx, account, amount); err != nil {
		return err
	}
	return l.record(ctx, domain.Transfer{Kind: domain.TransferDeposit, To: account, Amount: amount})
}

func (l *ledger) History(ctx context.Context, campaign domain.CampaignID) ([]domain.JournalEntry, error) {
	rows, err := l.q.Query(ctx, `
		SELECT id::text, kind, campaign_id, from_account, to_account, amount::text, created_at
		FROM transfers
		WHERE campaign_id = $1
		ORDER BY seq`,
		string(campaign),
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JournalEntry, error) {
		var (
			e                        domain.JournalEntry
			kind, cid, from, to, amt string
		)
		if err := row.Scan(&e.ID, &kind, &cid, &from, &to, &amt, &e.CreatedAt); err != nil {
			return e, err
		}
		amount, err := parseAmount(amt)
		if err != nil {
			return e, fmt.Errorf("transfer %s amount: %w", e.ID, err)
		}
		e.Transfer = domain.Transfer{
			Kind:       domain.TransferKind(kind),
			CampaignID: domain.CampaignID(cid),
			From:       domain.AccountID(from),
			To:         domain.AccountID(to),
			Amount:     amount,
		}
		e.CreatedAt = e.CreatedAt.UTC()
		return e, nil
	})
}

// credit adds amount to account, creating it when missing. A sum past the
// uint64 range leaves the row as is and reports domain.ErrAmountOverflow.
func (l *ledger) credit(ctx context.Context, account domain.AccountID, amount uint64) error {
	tag, err := l.q.Exec(ctx, `
		INSERT INTO accounts (id, balance) VALUES ($1, $2::numeric)
		ON CONFLICT (id) DO UPDATE SET balance = accounts.balance + excluded.balance
		WHERE accounts.balance + excluded.balance <= 18446744073709551615`,
		string(account),
		formatAmount(amount),
	)
	if err != nil {
		return fmt.Errorf("credit %s: %w", account, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAmountOverflow
	}
	return nil
}

func (l *ledger) record(ctx context.Context, t domain.Transfer) error {
	_, err := l.q.Exec(ctx, `
		INSERT INTO transfers (id, kind, campaign_id, from_account, to_account, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7)`,
		uuid.NewString(),
		string(t.Kind),
		string(t.CampaignID),
		string(t.From),
		string(t.To),
		formatAmount(t.Amount),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record transfer: %w", err)
	}
	return nil
}

func formatAmount(v uint64) string { return strconv.FormatUint(v, 10) }

func parseAmount(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }
