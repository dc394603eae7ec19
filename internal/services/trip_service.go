package services

import (
	"context"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/request_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/response_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (*response_models.TripDetailResponse, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error
}

type TripService struct {
	tripRepo      repositories.TripRepository
	accessService TripAccessServiceInterface
	logger        *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	accessService TripAccessServiceInterface,
	logger *zap.Logger) TripServiceInterface {

	return &TripService{
		tripRepo:      tripRepo,
		accessService: accessService,
		logger:        logger,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {

	trip := &db_models.Trip{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Color:       req.Color,
		ImageURL:    req.ImageURL,
	}

	created, err := s.tripRepo.CreateTrip(ctx, trip, parseUUIDList(req.Itineraries))
	if err != nil {
		s.logger.Error("failed to create trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildTripResponse(created, true)
	return &resp, nil
}

func (s *TripService) GetTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) (*response_models.TripDetailResponse, error) {

	trip, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessRead)
	if err != nil {
		return nil, err
	}

	detail, err := s.tripRepo.GetTripDetailByID(ctx, tripID)
	if err != nil {
		s.logger.Error("failed to load trip detail", zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if detail == nil {
		return nil, utils.ErrTripNotFound
	}

	return response_models.BuildTripDetailResponse(detail, trip.UserID == userID), nil
}

// ListTrips returns the trips the user owns followed by the trips the user
// collaborates on, each entry flagged with is_owner.
func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error) {

	owned, err := s.tripRepo.ListOwnedTrips(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list owned trips", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	collaborating, err := s.tripRepo.ListCollaboratingTrips(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list collaborating trips", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(owned)+len(collaborating))
	for i := range owned {
		out = append(out, response_models.BuildTripResponse(&owned[i], true))
	}
	for i := range collaborating {
		out = append(out, response_models.BuildTripResponse(&collaborating[i], false))
	}
	return out, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessWrite); err != nil {
		return nil, err
	}

	input := repositories.UpdateTripInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Budget:      req.Budget,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Color:       req.Color,
		ImageURL:    req.ImageURL,
	}
	if req.Itineraries != nil {
		ids := parseUUIDList(*req.Itineraries)
		input.Itineraries = &ids
	}

	updated, err := s.tripRepo.UpdateTrip(ctx, tripID, input)
	if err != nil {
		s.logger.Error("failed to update trip", zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrTripNotFound
	}

	resp := response_models.BuildTripResponse(updated, updated.UserID == userID)
	return &resp, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID) error {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, userID, AccessWrite); err != nil {
		return err
	}

	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		s.logger.Error("failed to delete trip", zap.String("trip_id", tripID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

// parseUUIDList keeps the ids that parse; anything else is dropped, matching
// the silent-drop policy for association patches.
func parseUUIDList(ids []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			out = append(out, id)
		}
	}
	return out
}
