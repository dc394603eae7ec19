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

type CalendarServiceInterface interface {
	CreateEvent(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateCalendarEventRequest) (*response_models.CalendarEventResponse, error)
	ListEvents(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) ([]response_models.CalendarEventResponse, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, req request_models.UpdateCalendarEventRequest) (*response_models.CalendarEventResponse, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error
}

type CalendarService struct {
	calendarRepo  repositories.CalendarRepository
	accessService TripAccessServiceInterface
}

func NewCalendarService(calendarRepo repositories.CalendarRepository, accessService TripAccessServiceInterface) CalendarServiceInterface {
	return &CalendarService{
		calendarRepo:  calendarRepo,
		accessService: accessService,
	}
}

func (s *CalendarService) CreateEvent(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateCalendarEventRequest) (*response_models.CalendarEventResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	event := &db_models.CalendarEvent{
		TripID:      tripID,
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	if err := s.calendarRepo.InsertTx(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildCalendarEventResponse(event), nil
}

func (s *CalendarService) ListEvents(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) ([]response_models.CalendarEventResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessRead); err != nil {
		return nil, err
	}

	events, err := s.calendarRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildCalendarEventResponses(events), nil
}

func (s *CalendarService) UpdateEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, req request_models.UpdateCalendarEventRequest) (*response_models.CalendarEventResponse, error) {

	event, err := s.calendarRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, event.TripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	updated, err := s.calendarRepo.Update(ctx, eventID, repositories.UpdateCalendarEventInput{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrEventNotFound
	}

	return response_models.BuildCalendarEventResponse(updated), nil
}

func (s *CalendarService) DeleteEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error {

	event, err := s.calendarRepo.FindByID(ctx, eventID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, event.TripID, userID, AccessWrite); err != nil {
		return err
	}

	if err := s.calendarRepo.Delete(ctx, eventID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
