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

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, userID uuid.UUID, req request_models.CreateItineraryRequest) (*response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, itineraryID uuid.UUID, userID uuid.UUID) (*response_models.ItineraryResponse, error)
	ListItineraries(ctx context.Context, userID uuid.UUID) ([]response_models.ItineraryResponse, error)
	UpdateItinerary(ctx context.Context, itineraryID uuid.UUID, userID uuid.UUID, req request_models.UpdateItineraryRequest) (*response_models.ItineraryResponse, error)
	DeleteItinerary(ctx context.Context, itineraryID uuid.UUID, userID uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	logger        *zap.Logger
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		logger:        logger,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, userID uuid.UUID, req request_models.CreateItineraryRequest) (*response_models.ItineraryResponse, error) {

	itinerary := &db_models.Itinerary{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Locations:      locationsFromPayloads(req.Locations),
		Transportation: transportationFromPayloads(req.Transportation),
		Activities:     activitiesFromPayloads(req.Activities),
	}

	created, err := s.itineraryRepo.CreateItinerary(ctx, itinerary, parseUUIDList(req.Trips))
	if err != nil {
		s.logger.Error("failed to create itinerary", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildItineraryResponse(created), nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, itineraryID uuid.UUID, userID uuid.UUID) (*response_models.ItineraryResponse, error) {

	itinerary, err := s.loadOwnedItinerary(ctx, itineraryID, userID)
	if err != nil {
		return nil, err
	}

	return response_models.BuildItineraryResponse(itinerary), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, userID uuid.UUID) ([]response_models.ItineraryResponse, error) {

	itineraries, err := s.itineraryRepo.ListItinerariesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list itineraries", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		out = append(out, *response_models.BuildItineraryResponse(&itineraries[i]))
	}
	return out, nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, itineraryID uuid.UUID, userID uuid.UUID, req request_models.UpdateItineraryRequest) (*response_models.ItineraryResponse, error) {

	if _, err := s.loadOwnedItinerary(ctx, itineraryID, userID); err != nil {
		return nil, err
	}

	input := repositories.UpdateItineraryInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if req.Locations != nil {
		rows := locationsFromPayloads(*req.Locations)
		input.Locations = &rows
	}
	if req.Transportation != nil {
		rows := transportationFromPayloads(*req.Transportation)
		input.Transportation = &rows
	}
	if req.Activities != nil {
		rows := activitiesFromPayloads(*req.Activities)
		input.Activities = &rows
	}
	if req.Trips != nil {
		ids := parseUUIDList(*req.Trips)
		input.Trips = &ids
	}

	updated, err := s.itineraryRepo.UpdateItinerary(ctx, itineraryID, input)
	if err != nil {
		s.logger.Error("failed to update itinerary", zap.String("itinerary_id", itineraryID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrItineraryNotFound
	}

	return response_models.BuildItineraryResponse(updated), nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, itineraryID uuid.UUID, userID uuid.UUID) error {

	if _, err := s.loadOwnedItinerary(ctx, itineraryID, userID); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteItinerary(ctx, itineraryID); err != nil {
		s.logger.Error("failed to delete itinerary", zap.String("itinerary_id", itineraryID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *ItineraryService) loadOwnedItinerary(ctx context.Context, itineraryID uuid.UUID, userID uuid.UUID) (*db_models.Itinerary, error) {

	itinerary, err := s.itineraryRepo.GetItineraryByID(ctx, itineraryID)
	if err != nil {
		s.logger.Error("failed to load itinerary", zap.String("itinerary_id", itineraryID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.UserID != userID {
		return nil, utils.ErrForbidden
	}

	return itinerary, nil
}

func locationsFromPayloads(payloads []request_models.LocationPayload) []db_models.Location {
	out := make([]db_models.Location, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, db_models.Location{
			Name:      p.Name,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Date:      p.Date,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Color:     p.Color,
			Comments:  p.Comments,
		})
	}
	return out
}

func transportationFromPayloads(payloads []request_models.TransportationPayload) []db_models.Transportation {
	out := make([]db_models.Transportation, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, db_models.Transportation{
			Type:          p.Type,
			FromLocation:  p.FromLocation,
			ToLocation:    p.ToLocation,
			DepartureDate: p.DepartureDate,
			DepartureTime: p.DepartureTime,
			ArrivalDate:   p.ArrivalDate,
			ArrivalTime:   p.ArrivalTime,
			Provider:      p.Provider,
		})
	}
	return out
}

func activitiesFromPayloads(payloads []request_models.ActivityPayload) []db_models.Activity {
	out := make([]db_models.Activity, 0, len(payloads))
	for _, p := range payloads {
		activity := db_models.Activity{
			Name:      p.Name,
			Date:      p.Date,
			Time:      p.Time,
			Duration:  p.Duration,
			Location:  p.Location,
			Notes:     p.Notes,
			Category:  p.Category,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		}
		if p.LocationID != nil {
			if id, err := uuid.Parse(*p.LocationID); err == nil {
				activity.LocationID = &id
			}
		}
		out = append(out, activity)
	}
	return out
}
