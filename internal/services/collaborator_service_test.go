package services

import (
	"context"
	"testing"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCollaborator(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Shared")

	collaborators, err := env.collaborators.AddCollaborator(ctx, trip.ID, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, collaborators, 1)
	assert.Equal(t, bob.ID.String(), collaborators[0].ID)
}

func TestAddCollaboratorTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Shared")

	_, err := env.collaborators.AddCollaborator(ctx, trip.ID, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = env.collaborators.AddCollaborator(ctx, trip.ID, alice.ID, bob.ID)
	assert.ErrorIs(t, err, utils.ErrCollaboratorExists)
}

func TestAddOwnerAsCollaboratorConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Mine")

	_, err := env.collaborators.AddCollaborator(ctx, trip.ID, alice.ID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrCollaboratorExists)
}

func TestAddCollaboratorUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	trip := env.seedTrip(t, alice, "Mine")

	_, err := env.collaborators.AddCollaborator(ctx, trip.ID, alice.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestCollaboratorMayManageCollaborators(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	carol := env.seedUser(t, "carol")
	trip := env.seedTrip(t, alice, "Shared")
	env.addCollaborator(t, trip, bob)

	collaborators, err := env.collaborators.AddCollaborator(ctx, trip.ID, bob.ID, carol.ID)
	require.NoError(t, err)
	assert.Len(t, collaborators, 2)
}

func TestStrangerMayNotManageCollaborators(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	mallory := env.seedUser(t, "mallory")
	carol := env.seedUser(t, "carol")
	trip := env.seedTrip(t, alice, "Private")

	_, err := env.collaborators.AddCollaborator(ctx, trip.ID, mallory.ID, carol.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestRemoveCollaborator(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Shared")
	env.addCollaborator(t, trip, bob)

	collaborators, err := env.collaborators.RemoveCollaborator(ctx, trip.ID, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, collaborators)
}

func TestRemoveMissingCollaborator(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	trip := env.seedTrip(t, alice, "Mine")

	_, err := env.collaborators.RemoveCollaborator(ctx, trip.ID, alice.ID, bob.ID)
	assert.ErrorIs(t, err, utils.ErrCollaboratorNotFound)
}

func TestListCollaboratorsRequiresAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	mallory := env.seedUser(t, "mallory")
	trip := env.seedTrip(t, alice, "Shared")
	env.addCollaborator(t, trip, bob)

	collaborators, err := env.collaborators.ListCollaborators(ctx, trip.ID, bob.ID)
	require.NoError(t, err)
	assert.Len(t, collaborators, 1)

	_, err = env.collaborators.ListCollaborators(ctx, trip.ID, mallory.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
