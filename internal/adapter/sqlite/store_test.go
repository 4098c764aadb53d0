package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/storetest"
	"crowdfund/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "crowdfund.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storetest.Store { return newTestStore(t) })
}

func TestStore_InMemory(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Deposit(ctx, "user:bob", 10))
	b, err := s.Balance(ctx, "user:bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), b)
}

func TestStore_SchemaIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "crowdfund.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = NewStore(db)
	require.NoError(t, err)
	s, err := NewStore(db)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestStore_ReopenKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crowdfund.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	s, err := NewStore(db)
	require.NoError(t, err)
	c, err := domain.NewCampaign("keep", "Keep", 5, "alice", s.now())
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, c))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	s, err = NewStore(db)
	require.NoError(t, err)

	got, err := s.Get(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("alice"), got.Owner)
	assert.Equal(t, uint64(5), got.Goal)
	assert.True(t, got.IsActive)
}
