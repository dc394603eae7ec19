package services

import (
	"context"
	"testing"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendFriendRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	request, err := env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.FriendRequestPending, request.Status)
	assert.Equal(t, alice.ID.String(), request.Sender.ID)
	assert.Equal(t, bob.ID.String(), request.Receiver.ID)
}

func TestSendFriendRequestToSelf(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")

	_, err := env.friends.SendFriendRequest(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSendFriendRequestUnknownReceiver(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")

	_, err := env.friends.SendFriendRequest(context.Background(), alice.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestSendFriendRequestDuplicatePending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	_, err := env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, utils.ErrFriendRequestExists)

	// Counter-request while one is pending is also a conflict.
	_, err = env.friends.SendFriendRequest(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrFriendRequestExists)
}

func TestAcceptFriendRequestOnlyReceiver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	request, err := env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	requestID := uuid.MustParse(request.ID)

	_, err = env.friends.AcceptFriendRequest(ctx, requestID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	accepted, err := env.friends.AcceptFriendRequest(ctx, requestID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.FriendRequestAccepted, accepted.Status)

	// A resolved request reads as missing.
	_, err = env.friends.AcceptFriendRequest(ctx, requestID, bob.ID)
	assert.ErrorIs(t, err, utils.ErrFriendRequestNotFound)
}

func TestAcceptedRequestMakesFriendsBothWays(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	request, err := env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.friends.AcceptFriendRequest(ctx, uuid.MustParse(request.ID), bob.ID)
	require.NoError(t, err)

	aliceFriends, err := env.friends.ListFriends(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID.String(), aliceFriends[0].ID)

	bobFriends, err := env.friends.ListFriends(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID.String(), bobFriends[0].ID)

	// A new request between friends is a conflict.
	_, err = env.friends.SendFriendRequest(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadyFriends)
}

func TestRejectFriendRequest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	request, err := env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	rejected, err := env.friends.RejectFriendRequest(ctx, uuid.MustParse(request.ID), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.FriendRequestRejected, rejected.Status)

	friends, err := env.friends.ListFriends(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	// Rejection clears the way for another attempt.
	_, err = env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
}

func TestListFriendRequestsShowsPendingOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	carol := env.seedUser(t, "carol")

	pending, err := env.friends.SendFriendRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	resolved, err := env.friends.SendFriendRequest(ctx, carol.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.friends.AcceptFriendRequest(ctx, uuid.MustParse(resolved.ID), bob.ID)
	require.NoError(t, err)

	requests, err := env.friends.ListFriendRequests(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, pending.ID, requests[0].ID)
}
