package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UpdateCalendarEventInput struct {
	Title       *string
	StartTime   *time.Time
	EndTime     *time.Time
	Description *string
}

type CalendarRepository interface {
	InsertTx(ctx context.Context, event *db_models.CalendarEvent) error
	FindByID(ctx context.Context, eventID uuid.UUID) (*db_models.CalendarEvent, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.CalendarEvent, error)
	Update(ctx context.Context, eventID uuid.UUID, input UpdateCalendarEventInput) (*db_models.CalendarEvent, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
}

type calendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) InsertTx(ctx context.Context, event *db_models.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *calendarRepository) FindByID(ctx context.Context, eventID uuid.UUID) (*db_models.CalendarEvent, error) {

	var event db_models.CalendarEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", eventID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (r *calendarRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.CalendarEvent, error) {

	var events []db_models.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("start_time").
		Find(&events).Error

	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *calendarRepository) Update(ctx context.Context, eventID uuid.UUID, input UpdateCalendarEventInput) (*db_models.CalendarEvent, error) {

	var event db_models.CalendarEvent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, "id = ?", eventID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.StartTime != nil {
			updates["start_time"] = *input.StartTime
		}
		if input.EndTime != nil {
			updates["end_time"] = *input.EndTime
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if len(updates) == 0 {
			return nil
		}

		return tx.Model(&event).Updates(updates).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (r *calendarRepository) Delete(ctx context.Context, eventID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", eventID).
		Delete(&db_models.CalendarEvent{}).Error
}
