package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"yatra/backend/internal/repository"
	"yatra/backend/internal/repository/testutil"
)

func TestContactMessageRepository_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewContactMessageRepository(db)
	ctx := context.Background()

	msg, err := repo.Create(ctx, "Stanzin", "stanzin@example.com", "Do you run winter Chadar treks?")
	require.NoError(t, err)
	require.NotZero(t, msg.ID)
	require.Equal(t, "Stanzin", msg.Name)
	require.False(t, msg.CreatedAt.IsZero())

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestContactMessageRepository_CountAll_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewContactMessageRepository(db)

	count, err := repo.CountAll(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}
