package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateItineraryInput is the enumerated whitelist of patchable itinerary
// fields. A non-nil nested list replaces every existing row of that kind
// under the itinerary; a non-nil Trips list replaces the trip associations,
// dropping ids that do not resolve.
type UpdateItineraryInput struct {
	Name           *string
	Description    *string
	StartDate      *time.Time
	EndDate        *time.Time
	Locations      *[]db_models.Location
	Transportation *[]db_models.Transportation
	Activities     *[]db_models.Activity
	Trips          *[]uuid.UUID
}

type ItineraryRepository interface {
	CreateItinerary(ctx context.Context, itinerary *db_models.Itinerary, tripIDs []uuid.UUID) (*db_models.Itinerary, error)
	GetItineraryByID(ctx context.Context, itineraryID uuid.UUID) (*db_models.Itinerary, error)
	ListItinerariesByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Itinerary, error)
	UpdateItinerary(ctx context.Context, itineraryID uuid.UUID, input UpdateItineraryInput) (*db_models.Itinerary, error)
	DeleteItinerary(ctx context.Context, itineraryID uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateItinerary(ctx context.Context, itinerary *db_models.Itinerary, tripIDs []uuid.UUID) (*db_models.Itinerary, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}

		if len(tripIDs) > 0 {
			var trips []db_models.Trip
			if err := tx.Find(&trips, "id IN ?", tripIDs).Error; err != nil {
				return err
			}
			if len(trips) > 0 {
				if err := tx.Model(itinerary).Association("Trips").Append(&trips); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetItineraryByID(ctx, itinerary.ID)
}

func (r *itineraryRepository) GetItineraryByID(ctx context.Context, itineraryID uuid.UUID) (*db_models.Itinerary, error) {

	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Locations").
		Preload("Transportation").
		Preload("Activities").
		Preload("Trips").
		First(&itinerary, "id = ?", itineraryID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) ListItinerariesByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Itinerary, error) {

	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Locations").
		Preload("Transportation").
		Preload("Activities").
		Preload("Trips").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

// UpdateItinerary applies the patch atomically. Nested collections are
// replaced wholesale: prior rows are deleted and the provided list inserted
// fresh. Returns (nil, nil) when the itinerary does not exist.
func (r *itineraryRepository) UpdateItinerary(ctx context.Context, itineraryID uuid.UUID, input UpdateItineraryInput) (*db_models.Itinerary, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itinerary db_models.Itinerary
		if err := tx.First(&itinerary, "id = ?", itineraryID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.StartDate != nil {
			updates["start_date"] = *input.StartDate
		}
		if input.EndDate != nil {
			updates["end_date"] = *input.EndDate
		}
		if len(updates) > 0 {
			if err := tx.Model(&itinerary).Updates(updates).Error; err != nil {
				return err
			}
		}

		if input.Locations != nil {
			if err := tx.Where("itinerary_id = ?", itineraryID).Delete(&db_models.Location{}).Error; err != nil {
				return err
			}
			rows := *input.Locations
			for i := range rows {
				rows[i].ItineraryID = itineraryID
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if input.Transportation != nil {
			if err := tx.Where("itinerary_id = ?", itineraryID).Delete(&db_models.Transportation{}).Error; err != nil {
				return err
			}
			rows := *input.Transportation
			for i := range rows {
				rows[i].ItineraryID = itineraryID
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if input.Activities != nil {
			if err := tx.Where("itinerary_id = ?", itineraryID).Delete(&db_models.Activity{}).Error; err != nil {
				return err
			}
			rows := *input.Activities
			for i := range rows {
				rows[i].ItineraryID = itineraryID
			}
			if len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if input.Trips != nil {
			var trips []db_models.Trip
			if len(*input.Trips) > 0 {
				if err := tx.Find(&trips, "id IN ?", *input.Trips).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&itinerary).Association("Trips").Replace(&trips); err != nil {
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

	return r.GetItineraryByID(ctx, itineraryID)
}

// DeleteItinerary removes the itinerary and its nested rows in one
// transaction. Trips linked through the association table stay intact.
func (r *itineraryRepository) DeleteItinerary(ctx context.Context, itineraryID uuid.UUID) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itinerary db_models.Itinerary
		if err := tx.First(&itinerary, "id = ?", itineraryID).Error; err != nil {
			return err
		}

		if err := tx.Where("itinerary_id = ?", itineraryID).Delete(&db_models.Location{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", itineraryID).Delete(&db_models.Transportation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", itineraryID).Delete(&db_models.Activity{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&itinerary).Association("Trips").Clear(); err != nil {
			return err
		}

		return tx.Delete(&itinerary).Error
	})
}
