package services

import (
	"context"
	"testing"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTripsFlagsOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	mine := env.seedTrip(t, alice, "Mine")
	shared := env.seedTrip(t, bob, "Theirs")
	env.addCollaborator(t, shared, alice)

	trips, err := env.trips.ListTrips(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, trips, 2)

	assert.Equal(t, mine.ID.String(), trips[0].ID)
	assert.True(t, trips[0].IsOwner)
	assert.Equal(t, shared.ID.String(), trips[1].ID)
	assert.False(t, trips[1].IsOwner)
}

func TestGetTripMissingBeatsForbidden(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")

	_, err := env.trips.GetTrip(context.Background(), uuid.New(), alice.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTripStrangerForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	mallory := env.seedUser(t, "mallory")
	trip := env.seedTrip(t, alice, "Private")

	_, err := env.trips.GetTrip(ctx, trip.ID, mallory.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestGetTripCollaboratorCanRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Shared")
	env.addCollaborator(t, trip, bob)

	detail, err := env.trips.GetTrip(ctx, trip.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.ID.String(), detail.ID)
	assert.False(t, detail.IsOwner)
}

func TestUpdateTripOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Shared")
	env.addCollaborator(t, trip, bob)

	title := "Renamed"
	_, err := env.trips.UpdateTrip(ctx, trip.ID, bob.ID, request_models.UpdateTripRequest{Title: &title})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := env.trips.UpdateTrip(ctx, trip.ID, alice.ID, request_models.UpdateTripRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestDeleteTripOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Shared")
	env.addCollaborator(t, trip, bob)

	err := env.trips.DeleteTrip(ctx, trip.ID, bob.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	require.NoError(t, env.trips.DeleteTrip(ctx, trip.ID, alice.ID))

	_, err = env.trips.GetTrip(ctx, trip.ID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestCreateTripDropsUnparseableItineraryIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")

	created, err := env.trips.CreateTrip(ctx, alice.ID, request_models.CreateTripRequest{
		Title:       "Portugal",
		Itineraries: []string{"not-a-uuid", uuid.NewString()},
	})

	require.NoError(t, err)
	assert.True(t, created.IsOwner)
	assert.Empty(t, created.Itineraries)
}
