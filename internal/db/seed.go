package db

import (
	"context"
	"log/slog"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// DemoFunds are the balances Seed gives to demo identities.
var DemoFunds = map[domain.Identity]uint64{
	"alice": 10_000,
	"bob":   5_000,
	"carol": 2_500,
}

// Seed deposits DemoFunds into ledger. Identities that already hold a
// balance are skipped, so running it on every start is safe.
func Seed(ctx context.Context, ledger port.Ledger, logger *slog.Logger) error {
	for who, amount := range DemoFunds {
		account := who.Account()
		current, err := ledger.Balance(ctx, account)
		if err != nil {
			return err
		}
		if current > 0 {
			continue
		}
		if err = ledger.Deposit(ctx, account, amount); err != nil {
			return err
		}
		logger.Info("seeded demo account", slog.String("account", string(account)), slog.Uint64("amount", amount))
	}
	return nil
}
