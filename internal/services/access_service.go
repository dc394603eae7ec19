package services

import (
	"context"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccessLevel int

// Access rule: reads and collaborator management are open to the owner and
// collaborators; trip field edits and deletion are owner only.
const (
	AccessRead AccessLevel = iota
	AccessWrite
	AccessManageCollaborators
)

type TripAccessServiceInterface interface {
	AuthorizeTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, level AccessLevel) (*db_models.Trip, error)
}

type TripAccessService struct {
	tripRepo repositories.TripRepository
	logger   *zap.Logger
}

func NewTripAccessService(tripRepo repositories.TripRepository, logger *zap.Logger) TripAccessServiceInterface {
	return &TripAccessService{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// AuthorizeTrip resolves the trip and checks the acting user against the
// required level. A missing trip is reported as NotFound before any
// authorization failure, so callers cannot probe for trip existence.
func (s *TripAccessService) AuthorizeTrip(ctx context.Context, tripID uuid.UUID, userID uuid.UUID, level AccessLevel) (*db_models.Trip, error) {

	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		s.logger.Error("failed to load trip for authorization",
			zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if trip.UserID == userID {
		return trip, nil
	}

	if level == AccessWrite {
		return nil, utils.ErrForbidden
	}

	isCollaborator, err := s.tripRepo.IsCollaborator(ctx, tripID, userID)
	if err != nil {
		s.logger.Error("failed to check collaborator",
			zap.String("trip_id", tripID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if !isCollaborator {
		return nil, utils.ErrForbidden
	}

	return trip, nil
}
