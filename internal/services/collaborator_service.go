package services

import (
	"context"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/response_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
)

type CollaboratorServiceInterface interface {
	AddCollaborator(ctx context.Context, tripID uuid.UUID, actingUserID uuid.UUID, targetUserID uuid.UUID) ([]response_models.UserSummary, error)
	RemoveCollaborator(ctx context.Context, tripID uuid.UUID, actingUserID uuid.UUID, targetUserID uuid.UUID) ([]response_models.UserSummary, error)
	ListCollaborators(ctx context.Context, tripID uuid.UUID, actingUserID uuid.UUID) ([]response_models.UserSummary, error)
}

type CollaboratorService struct {
	tripRepo      repositories.TripRepository
	accountRepo   repositories.AccountRepository
	accessService TripAccessServiceInterface
}

func NewCollaboratorService(
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	accessService TripAccessServiceInterface) CollaboratorServiceInterface {

	return &CollaboratorService{
		tripRepo:      tripRepo,
		accountRepo:   accountRepo,
		accessService: accessService,
	}
}

func (s *CollaboratorService) AddCollaborator(ctx context.Context, tripID uuid.UUID, actingUserID uuid.UUID, targetUserID uuid.UUID) ([]response_models.UserSummary, error) {

	trip, err := s.accessService.AuthorizeTrip(ctx, tripID, actingUserID, AccessManageCollaborators)
	if err != nil {
		return nil, err
	}

	target, err := s.accountRepo.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil {
		return nil, utils.ErrUserNotFound
	}

	// The owner is never stored as a collaborator; owner access is implicit.
	if target.ID == trip.UserID {
		return nil, utils.ErrCollaboratorExists
	}

	isCollaborator, err := s.tripRepo.IsCollaborator(ctx, tripID, targetUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if isCollaborator {
		return nil, utils.ErrCollaboratorExists
	}

	if err := s.tripRepo.AddCollaborator(ctx, tripID, target); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.collaboratorList(ctx, tripID)
}

func (s *CollaboratorService) RemoveCollaborator(ctx context.Context, tripID uuid.UUID, actingUserID uuid.UUID, targetUserID uuid.UUID) ([]response_models.UserSummary, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, actingUserID, AccessManageCollaborators); err != nil {
		return nil, err
	}

	target, err := s.accountRepo.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil {
		return nil, utils.ErrUserNotFound
	}

	isCollaborator, err := s.tripRepo.IsCollaborator(ctx, tripID, targetUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !isCollaborator {
		return nil, utils.ErrCollaboratorNotFound
	}

	if err := s.tripRepo.RemoveCollaborator(ctx, tripID, target); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.collaboratorList(ctx, tripID)
}

func (s *CollaboratorService) ListCollaborators(ctx context.Context, tripID uuid.UUID, actingUserID uuid.UUID) ([]response_models.UserSummary, error) {

	if _, err := s.accessService.AuthorizeTrip(ctx, tripID, actingUserID, AccessRead); err != nil {
		return nil, err
	}

	return s.collaboratorList(ctx, tripID)
}

func (s *CollaboratorService) collaboratorList(ctx context.Context, tripID uuid.UUID) ([]response_models.UserSummary, error) {

	collaborators, err := s.tripRepo.ListCollaborators(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildUserSummaries(collaborators), nil
}
