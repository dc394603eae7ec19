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

type DatesServiceInterface interface {
	CreateDates(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateDatesRequest) (*response_models.DatesResponse, error)
	GetDates(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (*response_models.DatesResponse, error)
	UpdateDates(ctx context.Context, datesID uuid.UUID, userID uuid.UUID, req request_models.UpdateDatesRequest) (*response_models.DatesResponse, error)
	DeleteDates(ctx context.Context, datesID uuid.UUID, userID uuid.UUID) error
}

type DatesService struct {
	datesRepo     repositories.DatesRepository
	accessService TripAccessServiceInterface
}

func NewDatesService(datesRepo repositories.DatesRepository, accessService TripAccessServiceInterface) DatesServiceInterface {
	return &DatesService{
		datesRepo:     datesRepo,
		accessService: accessService,
	}
}

// CreateDates rejects a second dates row for the same trip with a conflict.
func (s *DatesService) CreateDates(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateDatesRequest) (*response_models.DatesResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	existing, err := s.datesRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDatesAlreadySet
	}

	dates := &db_models.Dates{
		TripID:    tripID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.datesRepo.InsertTx(ctx, dates); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildDatesResponse(dates), nil
}

func (s *DatesService) GetDates(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (*response_models.DatesResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessRead); err != nil {
		return nil, err
	}

	dates, err := s.datesRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dates == nil {
		return nil, utils.ErrDatesNotFound
	}

	return response_models.BuildDatesResponse(dates), nil
}

func (s *DatesService) UpdateDates(ctx context.Context, datesID uuid.UUID, userID uuid.UUID, req request_models.UpdateDatesRequest) (*response_models.DatesResponse, error) {

	dates, err := s.datesRepo.FindByID(ctx, datesID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dates == nil {
		return nil, utils.ErrDatesNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, dates.TripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	updated, err := s.datesRepo.Update(ctx, datesID, repositories.UpdateDatesInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrDatesNotFound
	}

	return response_models.BuildDatesResponse(updated), nil
}

func (s *DatesService) DeleteDates(ctx context.Context, datesID uuid.UUID, userID uuid.UUID) error {

	dates, err := s.datesRepo.FindByID(ctx, datesID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if dates == nil {
		return utils.ErrDatesNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, dates.TripID, userID, AccessWrite); err != nil {
		return err
	}

	if err := s.datesRepo.Delete(ctx, datesID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
