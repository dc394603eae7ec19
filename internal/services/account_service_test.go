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

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.accounts.Register(ctx, request_models.SignUpRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	token, err := env.accounts.Login(ctx, request_models.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, request_models.SignUpRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = env.accounts.Register(ctx, request_models.SignUpRequest{
		Username: "alice2", Email: "alice@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, request_models.SignUpRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = env.accounts.Register(ctx, request_models.SignUpRequest{
		Username: "alice", Email: "other@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrUsernameAlreadyExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, request_models.SignUpRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = env.accounts.Login(ctx, request_models.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = env.accounts.Login(ctx, request_models.LoginRequest{
		Email: "nobody@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestGetUserByIDMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accounts.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestSearchUsersShortQueryReturnsEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedUser(t, "alice")

	for _, query := range []string{"", "a", "  a  "} {
		users, err := env.accounts.SearchUsers(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, users)
	}
}

func TestSearchUsersMatchesPrefix(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedUser(t, "alice")
	env.seedUser(t, "alicia")
	env.seedUser(t, "bob")

	users, err := env.accounts.SearchUsers(ctx, "ali")
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = env.accounts.SearchUsers(ctx, "zz")
	require.NoError(t, err)
	assert.Empty(t, users)
}
