package repositories

import (
	"context"
	"errors"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateBudgetInput struct {
	Amount      *float64
	Currency    *string
	Category    *string
	Description *string
}

type BudgetRepository interface {
	InsertTx(ctx context.Context, budget *db_models.Budget) error
	FindByID(ctx context.Context, budgetID uuid.UUID) (*db_models.Budget, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Budget, error)
	Update(ctx context.Context, budgetID uuid.UUID, input UpdateBudgetInput) (*db_models.Budget, error)
	Delete(ctx context.Context, budgetID uuid.UUID) error
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) InsertTx(ctx context.Context, budget *db_models.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

func (r *budgetRepository) FindByID(ctx context.Context, budgetID uuid.UUID) (*db_models.Budget, error) {

	var budget db_models.Budget
	err := r.db.WithContext(ctx).First(&budget, "id = ?", budgetID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}

func (r *budgetRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Budget, error) {

	var budgets []db_models.Budget
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at").
		Find(&budgets).Error

	if err != nil {
		return nil, err
	}

	return budgets, nil
}

func (r *budgetRepository) Update(ctx context.Context, budgetID uuid.UUID, input UpdateBudgetInput) (*db_models.Budget, error) {

	var budget db_models.Budget
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&budget, "id = ?", budgetID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Amount != nil {
			updates["amount"] = *input.Amount
		}
		if input.Currency != nil {
			updates["currency"] = *input.Currency
		}
		if input.Category != nil {
			updates["category"] = *input.Category
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&budget).Updates(updates).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}

func (r *budgetRepository) Delete(ctx context.Context, budgetID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", budgetID).
		Delete(&db_models.Budget{}).Error
}
