package db

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	logger := slog.New(slog.DiscardHandler)

	require.NoError(t, store.Deposit(ctx, "user:bob", 7))
	require.NoError(t, Seed(ctx, store, logger))
	// second run must not credit twice
	require.NoError(t, Seed(ctx, store, logger))

	for who, amount := range DemoFunds {
		b, err := store.Balance(ctx, who.Account())
		require.NoError(t, err)
		if who == "bob" {
			assert.Equal(t, uint64(7), b)
			continue
		}
		assert.Equal(t, amount, b, "balance of %s", who)
	}
}
