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

type DestinationServiceInterface interface {
	CreateDestination(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error)
	ListDestinations(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) ([]response_models.DestinationResponse, error)
	UpdateDestination(ctx context.Context, destinationID uuid.UUID, userID uuid.UUID, req request_models.UpdateDestinationRequest) (*response_models.DestinationResponse, error)
	DeleteDestination(ctx context.Context, destinationID uuid.UUID, userID uuid.UUID) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	accessService   TripAccessServiceInterface
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, accessService TripAccessServiceInterface) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		accessService:   accessService,
	}
}

func (s *DestinationService) CreateDestination(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.CreateDestinationRequest) (*response_models.DestinationResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	destination := &db_models.Destination{
		TripID:      tripID,
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.destinationRepo.InsertTx(ctx, destination); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildDestinationResponse(destination), nil
}

func (s *DestinationService) ListDestinations(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) ([]response_models.DestinationResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessRead); err != nil {
		return nil, err
	}

	destinations, err := s.destinationRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildDestinationResponses(destinations), nil
}

func (s *DestinationService) UpdateDestination(ctx context.Context, destinationID uuid.UUID, userID uuid.UUID, req request_models.UpdateDestinationRequest) (*response_models.DestinationResponse, error) {

	destination, err := s.destinationRepo.FindByID(ctx, destinationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, destination.TripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	updated, err := s.destinationRepo.Update(ctx, destinationID, repositories.UpdateDestinationInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Order:       req.Order,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrDestinationNotFound
	}

	return response_models.BuildDestinationResponse(updated), nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, destinationID uuid.UUID, userID uuid.UUID) error {

	destination, err := s.destinationRepo.FindByID(ctx, destinationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if destination == nil {
		return utils.ErrDestinationNotFound
	}

	if _, err := s.accessService.AuthorizeTrip(ctx, destination.TripID, userID, AccessWrite); err != nil {
		return err
	}

	if err := s.destinationRepo.Delete(ctx, destinationID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
