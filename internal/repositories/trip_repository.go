package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateTripInput is the enumerated whitelist of patchable trip fields. Nil
// means "leave alone". A non-nil Itineraries list replaces the trip's
// itinerary associations; ids that do not resolve are dropped.
type UpdateTripInput struct {
	Title       *string
	Description *string
	Location    *string
	Budget      *float64
	StartDate   *time.Time
	EndDate     *time.Time
	Color       *string
	ImageURL    *string
	Itineraries *[]uuid.UUID
}

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *db_models.Trip, itineraryIDs []uuid.UUID) (*db_models.Trip, error)
	GetTripByID(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error)
	GetTripDetailByID(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error)
	ListOwnedTrips(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	ListCollaboratingTrips(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, input UpdateTripInput) (*db_models.Trip, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error

	IsCollaborator(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (bool, error)
	AddCollaborator(ctx context.Context, tripID uuid.UUID, user *db_models.User) error
	RemoveCollaborator(ctx context.Context, tripID uuid.UUID, user *db_models.User) error
	ListCollaborators(ctx context.Context, tripID uuid.UUID) ([]db_models.User, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *db_models.Trip, itineraryIDs []uuid.UUID) (*db_models.Trip, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}

		if len(itineraryIDs) > 0 {
			var itineraries []db_models.Itinerary
			if err := tx.Find(&itineraries, "id IN ?", itineraryIDs).Error; err != nil {
				return err
			}
			if len(itineraries) > 0 {
				if err := tx.Model(trip).Association("Itineraries").Append(&itineraries); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetTripByID(ctx, trip.ID)
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error) {

	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Itineraries").
		Preload("Collaborators").
		First(&trip, "id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetTripDetailByID(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error) {

	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Itineraries").
		Preload("Itineraries.Locations").
		Preload("Collaborators").
		First(&trip, "id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListOwnedTrips(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {

	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Itineraries").
		Preload("Collaborators").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) ListCollaboratingTrips(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {

	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Itineraries").
		Preload("Collaborators").
		Joins("JOIN trip_collaborators tc ON tc.trip_id = trips.id").
		Where("tc.user_id = ?", userID).
		Order("trips.created_at").
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

// UpdateTrip applies the patch atomically: scalar columns and the itinerary
// association list either all change or none do. Returns (nil, nil) when the
// trip does not exist.
func (r *tripRepository) UpdateTrip(ctx context.Context, tripID uuid.UUID, input UpdateTripInput) (*db_models.Trip, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip db_models.Trip
		if err := tx.First(&trip, "id = ?", tripID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Location != nil {
			updates["location"] = *input.Location
		}
		if input.Budget != nil {
			updates["budget"] = *input.Budget
		}
		if input.StartDate != nil {
			updates["start_date"] = *input.StartDate
		}
		if input.EndDate != nil {
			updates["end_date"] = *input.EndDate
		}
		if input.Color != nil {
			updates["color"] = *input.Color
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if len(updates) > 0 {
			if err := tx.Model(&trip).Updates(updates).Error; err != nil {
				return err
			}
		}

		if input.Itineraries != nil {
			var itineraries []db_models.Itinerary
			if len(*input.Itineraries) > 0 {
				if err := tx.Find(&itineraries, "id IN ?", *input.Itineraries).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&trip).Association("Itineraries").Replace(&itineraries); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.GetTripByID(ctx, tripID)
}

// DeleteTrip removes the trip and everything it owns in one transaction. The
// itinerary and collaborator links are unlinked, not deleted.
func (r *tripRepository) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip db_models.Trip
		if err := tx.First(&trip, "id = ?", tripID).Error; err != nil {
			return err
		}

		if err := tx.Where("trip_id = ?", tripID).Delete(&db_models.Destination{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&db_models.Budget{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&db_models.CalendarEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("trip_id = ?", tripID).Delete(&db_models.Dates{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&trip).Association("Itineraries").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&trip).Association("Collaborators").Clear(); err != nil {
			return err
		}

		return tx.Delete(&trip).Error
	})
}

func (r *tripRepository) IsCollaborator(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Table("trip_collaborators").
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *tripRepository) AddCollaborator(ctx context.Context, tripID uuid.UUID, user *db_models.User) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Trip{BaseModel: db_models.BaseModel{ID: tripID}}).
		Association("Collaborators").
		Append(user)
}

func (r *tripRepository) RemoveCollaborator(ctx context.Context, tripID uuid.UUID, user *db_models.User) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Trip{BaseModel: db_models.BaseModel{ID: tripID}}).
		Association("Collaborators").
		Delete(user)
}

func (r *tripRepository) ListCollaborators(ctx context.Context, tripID uuid.UUID) ([]db_models.User, error) {

	var users []db_models.User
	err := r.db.WithContext(ctx).
		Model(&db_models.Trip{BaseModel: db_models.BaseModel{ID: tripID}}).
		Association("Collaborators").
		Find(&users)

	if err != nil {
		return nil, err
	}

	return users, nil
}
