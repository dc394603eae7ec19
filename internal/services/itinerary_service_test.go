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

func TestItineraryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Portugal")

	created, err := env.itineraries.CreateItinerary(ctx, alice.ID, request_models.CreateItineraryRequest{
		Name: "Week one",
		Locations: []request_models.LocationPayload{
			{Name: "Lisbon", Latitude: 38.72, Longitude: -9.14},
			{Name: "Porto"},
		},
		Transportation: []request_models.TransportationPayload{
			{Type: "train", FromLocation: "Lisbon", ToLocation: "Porto"},
		},
		Activities: []request_models.ActivityPayload{
			{Name: "Tram 28"},
		},
		Trips: []string{trip.ID.String()},
	})
	require.NoError(t, err)
	assert.Len(t, created.Locations, 2)
	assert.Len(t, created.Transportation, 1)
	assert.Len(t, created.Activities, 1)
	require.Len(t, created.Trips, 1)
	assert.Equal(t, trip.ID.String(), created.Trips[0])

	itineraryID := uuid.MustParse(created.ID)

	fetched, err := env.itineraries.GetItinerary(ctx, itineraryID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	locations := []request_models.LocationPayload{
		{Name: "Faro"},
		{Name: "Lagos"},
		{Name: "Sagres"},
	}
	updated, err := env.itineraries.UpdateItinerary(ctx, itineraryID, alice.ID, request_models.UpdateItineraryRequest{
		Locations: &locations,
	})
	require.NoError(t, err)
	assert.Len(t, updated.Locations, 3)
	assert.Len(t, updated.Transportation, 1)

	require.NoError(t, env.itineraries.DeleteItinerary(ctx, itineraryID, alice.ID))

	_, err = env.itineraries.GetItinerary(ctx, itineraryID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestItineraryOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	mallory := env.seedUser(t, "mallory")

	created, err := env.itineraries.CreateItinerary(ctx, alice.ID, request_models.CreateItineraryRequest{
		Name: "Week one",
	})
	require.NoError(t, err)
	itineraryID := uuid.MustParse(created.ID)

	_, err = env.itineraries.GetItinerary(ctx, itineraryID, mallory.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	name := "Hijacked"
	_, err = env.itineraries.UpdateItinerary(ctx, itineraryID, mallory.ID, request_models.UpdateItineraryRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = env.itineraries.DeleteItinerary(ctx, itineraryID, mallory.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestItineraryMissingBeatsForbidden(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")

	_, err := env.itineraries.GetItinerary(context.Background(), uuid.New(), alice.ID)
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestListItinerariesScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	_, err := env.itineraries.CreateItinerary(ctx, alice.ID, request_models.CreateItineraryRequest{Name: "mine"})
	require.NoError(t, err)
	_, err = env.itineraries.CreateItinerary(ctx, bob.ID, request_models.CreateItineraryRequest{Name: "theirs"})
	require.NoError(t, err)

	itineraries, err := env.itineraries.ListItineraries(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, itineraries, 1)
	assert.Equal(t, "mine", itineraries[0].Name)
}
