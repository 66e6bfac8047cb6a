package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/testutil"
)

// newTestTx returns a transaction that is rolled back after the test.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// seedAccount inserts an account so trips and schedules have an owner.
func seedAccount(t *testing.T, tx pgx.Tx, username string) domain.Account {
	t.Helper()
	acct, err := repo.NewAccountRepo(tx).Create(context.Background(), domain.Account{
		Username:     username,
		PasswordHash: "$2a$10$not-a-real-hash",
	})
	require.NoError(t, err, "seed account")
	return acct
}

// seedTrip inserts a trip owned by username.
func seedTrip(t *testing.T, tx pgx.Tx, username, title string) domain.Trip {
	t.Helper()
	trip, err := repo.NewTripRepo(tx).Create(context.Background(), domain.Trip{
		Title:    title,
		Username: username,
	})
	require.NoError(t, err, "seed trip")
	return trip
}
