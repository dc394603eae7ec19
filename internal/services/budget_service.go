package services

import (
	"context"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/response_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
)

type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateBudgetRequest) (*response_models.BudgetResponse, error)
	ListBudgets(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) ([]response_models.BudgetResponse, error)
	UpdateBudget(ctx context.Context, budgetID uuid.UUID, userID uuid.UUID, req request_models.UpdateBudgetRequest) (*response_models.BudgetResponse, error)
	DeleteBudget(ctx context.Context, budgetID uuid.UUID, userID uuid.UUID) error
}

type BudgetService struct {
	budgetRepo    repositories.BudgetRepository
	accessService TripAccessServiceInterface
}

func NewBudgetService(budgetRepo repositories.BudgetRepository, accessService TripAccessServiceInterface) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:    budgetRepo,
		accessService: accessService,
	}
}

func (s *BudgetService) CreateBudget(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateBudgetRequest) (*response_models.BudgetResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	budget := &db_models.Budget{
		TripID:      tripID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.budgetRepo.InsertTx(ctx, budget); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildBudgetResponse(budget), nil
}

func (s *BudgetService) ListBudgets(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) ([]response_models.BudgetResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessRead); err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildBudgetResponses(budgets), nil
}

func (s *BudgetService) UpdateBudget(ctx context.Context, budgetID uuid.UUID, userID uuid.UUID, req request_models.UpdateBudgetRequest) (*response_models.BudgetResponse, error) {

	budget, err := s.budgetRepo.FindByID(ctx, budgetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if budget == nil {
		return nil, utils.ErrBudgetNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, budget.TripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	updated, err := s.budgetRepo.Update(ctx, budgetID, repositories.UpdateBudgetInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrBudgetNotFound
	}

	return response_models.BuildBudgetResponse(updated), nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID uuid.UUID, userID uuid.UUID) error {

	budget, err := s.budgetRepo.FindByID(ctx, budgetID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if budget == nil {
		return utils.ErrBudgetNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, budget.TripID, userID, AccessWrite); err != nil {
		return err
	}

	if err := s.budgetRepo.Delete(ctx, budgetID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
