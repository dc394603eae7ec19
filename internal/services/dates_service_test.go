package services

import (
	"context"
	"testing"
	"time"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDatesSecondConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Portugal")

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	created, err := env.dates.CreateDates(ctx, trip.ID, alice.ID, request_models.CreateDatesRequest{
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	_, err = env.dates.CreateDates(ctx, trip.ID, alice.ID, request_models.CreateDatesRequest{
		StartDate: start,
		EndDate:   end,
	})
	assert.ErrorIs(t, err, utils.ErrDatesAlreadySet)
}

func TestGetDatesMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Portugal")

	_, err := env.dates.GetDates(ctx, trip.ID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrDatesNotFound)
}

func TestDatesLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Portugal")

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := env.dates.CreateDates(ctx, trip.ID, alice.ID, request_models.CreateDatesRequest{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	datesID := uuid.MustParse(created.ID)
	newEnd := start.AddDate(0, 0, 10)
	updated, err := env.dates.UpdateDates(ctx, datesID, alice.ID, request_models.UpdateDatesRequest{
		EndDate: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, utils.FormatRFC3339(newEnd), updated.EndDate)

	require.NoError(t, env.dates.DeleteDates(ctx, datesID, alice.ID))

	_, err = env.dates.GetDates(ctx, trip.ID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrDatesNotFound)

	// Once cleared the trip can take a fresh range.
	_, err = env.dates.CreateDates(ctx, trip.ID, alice.ID, request_models.CreateDatesRequest{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
	})
	require.NoError(t, err)
}

func TestDatesRequireWriteAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Portugal")
	env.addCollaborator(t, trip, bob)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := env.dates.CreateDates(ctx, trip.ID, bob.ID, request_models.CreateDatesRequest{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	created, err := env.dates.CreateDates(ctx, trip.ID, alice.ID, request_models.CreateDatesRequest{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	// Collaborators can still read what the owner set.
	fetched, err := env.dates.GetDates(ctx, trip.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}
