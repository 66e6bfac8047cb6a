package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

func TestTripRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	seedAccount(t, tx, "owner")
	r := repo.NewTripRepo(tx)

	got, err := r.Create(context.Background(), domain.Trip{Title: "Jeju weekend", Username: "owner"})

	require.NoError(t, err)
	assert.NotZero(t, got.ID, "ID should be DB-generated")
	assert.Equal(t, "Jeju weekend", got.Title)
	assert.Equal(t, "owner", got.Username)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	_, err := r.GetByID(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_FilterByUsername(t *testing.T) {
	tx := newTestTx(t)
	seedAccount(t, tx, "alice")
	seedAccount(t, tx, "bob")
	a1 := seedTrip(t, tx, "alice", "Seoul")
	a2 := seedTrip(t, tx, "alice", "Busan")
	seedTrip(t, tx, "bob", "Gyeongju")
	r := repo.NewTripRepo(tx)

	alice := "alice"
	trips, err := r.List(context.Background(), domain.TripFilter{Username: &alice})

	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, a1.ID, trips[0].ID, "ordered by id")
	assert.Equal(t, a2.ID, trips[1].ID)
}

func TestTripRepo_List_NoFilter(t *testing.T) {
	tx := newTestTx(t)
	seedAccount(t, tx, "alice")
	seedAccount(t, tx, "bob")
	seedTrip(t, tx, "alice", "Seoul")
	seedTrip(t, tx, "bob", "Gyeongju")
	r := repo.NewTripRepo(tx)

	trips, err := r.List(context.Background(), domain.TripFilter{})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(trips), 2)
}

func TestTripRepo_Update(t *testing.T) {
	tx := newTestTx(t)
	seedAccount(t, tx, "owner")
	created := seedTrip(t, tx, "owner", "Old")
	r := repo.NewTripRepo(tx)

	created.Title = "New"
	updated, err := r.Update(context.Background(), created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New", updated.Title)
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	tx := newTestTx(t)
	seedAccount(t, tx, "owner")
	r := repo.NewTripRepo(tx)

	_, err := r.Update(context.Background(), domain.Trip{ID: -1, Title: "x", Username: "owner"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	seedAccount(t, tx, "owner")
	created := seedTrip(t, tx, "owner", "Gone soon")
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err := r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)

	err := r.Delete(context.Background(), -1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
