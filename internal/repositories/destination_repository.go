package repositories

import (
	"context"
	"errors"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateDestinationInput struct {
	Name        *string
	Location    *string
	Description *string
	Order       *int
}

type DestinationRepository interface {
	InsertTx(ctx context.Context, destination *db_models.Destination) error
	FindByID(ctx context.Context, destinationID uuid.UUID) (*db_models.Destination, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Destination, error)
	Update(ctx context.Context, destinationID uuid.UUID, input UpdateDestinationInput) (*db_models.Destination, error)
	Delete(ctx context.Context, destinationID uuid.UUID) error
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) InsertTx(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) FindByID(ctx context.Context, destinationID uuid.UUID) (*db_models.Destination, error) {

	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", destinationID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Destination, error) {

	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at").
		Find(&destinations).Error

	if err != nil {
		return nil, err
	}

	return destinations, nil
}

func (r *destinationRepository) Update(ctx context.Context, destinationID uuid.UUID, input UpdateDestinationInput) (*db_models.Destination, error) {

	var destination db_models.Destination
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&destination, "id = ?", destinationID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Location != nil {
			updates["location"] = *input.Location
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Order != nil {
			updates["order"] = *input.Order
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&destination).Updates(updates).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) Delete(ctx context.Context, destinationID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", destinationID).
		Delete(&db_models.Destination{}).Error
}
