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

func TestDestinationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Portugal")

	created, err := env.destinations.CreateDestination(ctx, trip.ID, alice.ID, request_models.CreateDestinationRequest{
		Name:     "Porto",
		Location: "Northern Portugal",
		Order:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, trip.ID.String(), created.TripID)

	list, err := env.destinations.ListDestinations(ctx, trip.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	order := 5
	updated, err := env.destinations.UpdateDestination(ctx, uuid.MustParse(created.ID), alice.ID, request_models.UpdateDestinationRequest{
		Order: &order,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Order)
	assert.Equal(t, "Porto", updated.Name)

	require.NoError(t, env.destinations.DeleteDestination(ctx, uuid.MustParse(created.ID), alice.ID))

	list, err = env.destinations.ListDestinations(ctx, trip.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDestinationWriteGateFollowsTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	mallory := env.seedUser(t, "mallory")
	trip := env.seedTrip(t, alice, "Portugal")
	env.addCollaborator(t, trip, bob)

	_, err := env.destinations.CreateDestination(ctx, trip.ID, bob.ID, request_models.CreateDestinationRequest{
		Name: "Porto", Location: "North",
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	created, err := env.destinations.CreateDestination(ctx, trip.ID, alice.ID, request_models.CreateDestinationRequest{
		Name: "Porto", Location: "North",
	})
	require.NoError(t, err)

	// Collaborators read, strangers do not.
	_, err = env.destinations.ListDestinations(ctx, trip.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.destinations.ListDestinations(ctx, trip.ID, mallory.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = env.destinations.DeleteDestination(ctx, uuid.MustParse(created.ID), bob.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestUpdateMissingDestination(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")

	name := "anything"
	_, err := env.destinations.UpdateDestination(context.Background(), uuid.New(), alice.ID, request_models.UpdateDestinationRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestBudgetLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Portugal")

	created, err := env.budgets.CreateBudget(ctx, trip.ID, alice.ID, request_models.CreateBudgetRequest{
		Amount:   1200,
		Currency: "EUR",
		Category: "lodging",
	})
	require.NoError(t, err)

	amount := 1500.0
	updated, err := env.budgets.UpdateBudget(ctx, uuid.MustParse(created.ID), alice.ID, request_models.UpdateBudgetRequest{
		Amount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, updated.Amount)
	assert.Equal(t, "EUR", updated.Currency)

	require.NoError(t, env.budgets.DeleteBudget(ctx, uuid.MustParse(created.ID), alice.ID))

	_, err = env.budgets.UpdateBudget(ctx, uuid.MustParse(created.ID), alice.ID, request_models.UpdateBudgetRequest{Amount: &amount})
	assert.ErrorIs(t, err, utils.ErrBudgetNotFound)
}

func TestCalendarLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Portugal")

	start := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	created, err := env.calendar.CreateEvent(ctx, trip.ID, alice.ID, request_models.CreateCalendarEventRequest{
		Title:     "Flight to Lisbon",
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	events, err := env.calendar.ListEvents(ctx, trip.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Flight to Lisbon", events[0].Title)

	title := "Flight to Porto"
	updated, err := env.calendar.UpdateEvent(ctx, uuid.MustParse(created.ID), alice.ID, request_models.UpdateCalendarEventRequest{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "Flight to Porto", updated.Title)

	require.NoError(t, env.calendar.DeleteEvent(ctx, uuid.MustParse(created.ID), alice.ID))

	events, err = env.calendar.ListEvents(ctx, trip.ID, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestTripItemsMissingTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")

	_, err := env.destinations.ListDestinations(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	_, err = env.budgets.ListBudgets(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	_, err = env.calendar.ListEvents(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}
