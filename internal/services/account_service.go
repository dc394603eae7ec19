package services

import (
	"context"
	"strings"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/response_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const searchResultLimit = 20

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserSummary, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*response_models.UserSummary, error)
	SearchUsers(ctx context.Context, query string) ([]response_models.UserSummary, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserSummary, error) {

	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		a.logger.Error("failed to check email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = a.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		a.logger.Error("failed to check username", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.InsertTx(ctx, user); err != nil {
		a.logger.Error("failed to insert user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	summary := response_models.BuildUserSummary(user)
	return &summary, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {

	user, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		a.logger.Error("failed to load user for login", zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		a.logger.Error("failed to sign token", zap.Error(err))
		return "", utils.ErrDatabaseError
	}

	return token, nil
}

func (a *AccountService) GetUserByID(ctx context.Context, userID uuid.UUID) (*response_models.UserSummary, error) {

	user, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		a.logger.Error("failed to load user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	summary := response_models.BuildUserSummary(user)
	return &summary, nil
}

// SearchUsers returns an empty list for queries shorter than two characters
// rather than failing.
func (a *AccountService) SearchUsers(ctx context.Context, query string) ([]response_models.UserSummary, error) {

	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []response_models.UserSummary{}, nil
	}

	users, err := a.accountRepo.SearchUsers(ctx, query, searchResultLimit)
	if err != nil {
		a.logger.Error("failed to search users", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildUserSummaries(users), nil
}
