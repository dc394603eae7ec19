package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateDatesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type DatesRepository interface {
	InsertTx(ctx context.Context, dates *db_models.Dates) error
	FindByID(ctx context.Context, datesID uuid.UUID) (*db_models.Dates, error)
	FindByTrip(ctx context.Context, tripID uuid.UUID) (*db_models.Dates, error)
	Update(ctx context.Context, datesID uuid.UUID, input UpdateDatesInput) (*db_models.Dates, error)
	Delete(ctx context.Context, datesID uuid.UUID) error
}

type datesRepository struct {
	db *gorm.DB
}

func NewDatesRepository(db *gorm.DB) DatesRepository {
	return &datesRepository{db: db}
}

func (r *datesRepository) InsertTx(ctx context.Context, dates *db_models.Dates) error {
	return r.db.WithContext(ctx).Create(dates).Error
}

func (r *datesRepository) FindByID(ctx context.Context, datesID uuid.UUID) (*db_models.Dates, error) {

	var dates db_models.Dates
	err := r.db.WithContext(ctx).First(&dates, "id = ?", datesID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &dates, nil
}

func (r *datesRepository) FindByTrip(ctx context.Context, tripID uuid.UUID) (*db_models.Dates, error) {

	var dates db_models.Dates
	err := r.db.WithContext(ctx).First(&dates, "trip_id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &dates, nil
}

func (r *datesRepository) Update(ctx context.Context, datesID uuid.UUID, input UpdateDatesInput) (*db_models.Dates, error) {

	var dates db_models.Dates
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dates, "id = ?", datesID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.StartDate != nil {
			updates["start_date"] = *input.StartDate
		}
		if input.EndDate != nil {
			updates["end_date"] = *input.EndDate
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&dates).Updates(updates).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &dates, nil
}

// Delete removes the row for good; a soft-deleted row would keep holding the
// unique trip_id slot and block a new range.
func (r *datesRepository) Delete(ctx context.Context, datesID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", datesID).
		Delete(&db_models.Dates{}).Error
}
