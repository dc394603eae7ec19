package services

import (
	"context"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/response_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
	"github.com/google/uuid"
)

type FriendServiceInterface interface {
	SendFriendRequest(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID) (*response_models.FriendRequestResponse, error)
	AcceptFriendRequest(ctx context.Context, requestID uuid.UUID, actingUserID uuid.UUID) (*response_models.FriendRequestResponse, error)
	RejectFriendRequest(ctx context.Context, requestID uuid.UUID, actingUserID uuid.UUID) (*response_models.FriendRequestResponse, error)
	ListFriends(ctx context.Context, userID uuid.UUID) ([]response_models.UserSummary, error)
	ListFriendRequests(ctx context.Context, userID uuid.UUID) ([]response_models.FriendRequestResponse, error)
}

type FriendService struct {
	friendRepo  repositories.FriendRepository
	accountRepo repositories.AccountRepository
}

func NewFriendService(friendRepo repositories.FriendRepository, accountRepo repositories.AccountRepository) FriendServiceInterface {
	return &FriendService{
		friendRepo:  friendRepo,
		accountRepo: accountRepo,
	}
}

func (s *FriendService) SendFriendRequest(ctx context.Context, senderID uuid.UUID, receiverID uuid.UUID) (*response_models.FriendRequestResponse, error) {

	if senderID == receiverID {
		return nil, utils.ErrInvalidInput
	}

	receiver, err := s.accountRepo.FindByID(ctx, receiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if receiver == nil {
		return nil, utils.ErrUserNotFound
	}

	areFriends, err := s.friendRepo.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if areFriends {
		return nil, utils.ErrAlreadyFriends
	}

	pending, err := s.friendRepo.FindPendingBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pending != nil {
		return nil, utils.ErrFriendRequestExists
	}

	request := &db_models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     db_models.FriendRequestPending,
	}
	if err := s.friendRepo.InsertRequest(ctx, request); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := s.friendRepo.FindRequestByID(ctx, request.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildFriendRequestResponse(created), nil
}

func (s *FriendService) AcceptFriendRequest(ctx context.Context, requestID uuid.UUID, actingUserID uuid.UUID) (*response_models.FriendRequestResponse, error) {
	return s.resolveRequest(ctx, requestID, actingUserID, db_models.FriendRequestAccepted)
}

func (s *FriendService) RejectFriendRequest(ctx context.Context, requestID uuid.UUID, actingUserID uuid.UUID) (*response_models.FriendRequestResponse, error) {
	return s.resolveRequest(ctx, requestID, actingUserID, db_models.FriendRequestRejected)
}

// resolveRequest transitions a pending request. Only the receiver may act on
// it; requests already resolved read as missing.
func (s *FriendService) resolveRequest(ctx context.Context, requestID uuid.UUID, actingUserID uuid.UUID, status string) (*response_models.FriendRequestResponse, error) {

	request, err := s.friendRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if request == nil || request.Status != db_models.FriendRequestPending {
		return nil, utils.ErrFriendRequestNotFound
	}
	if request.ReceiverID != actingUserID {
		return nil, utils.ErrForbidden
	}

	if err := s.friendRepo.UpdateRequestStatus(ctx, requestID, status); err != nil {
		return nil, utils.ErrDatabaseError
	}

	request.Status = status
	return response_models.BuildFriendRequestResponse(request), nil
}

func (s *FriendService) ListFriends(ctx context.Context, userID uuid.UUID) ([]response_models.UserSummary, error) {

	requests, err := s.friendRepo.ListAcceptedForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	friends := make([]response_models.UserSummary, 0, len(requests))
	for i := range requests {
		if requests[i].SenderID == userID {
			friends = append(friends, response_models.BuildUserSummary(&requests[i].Receiver))
		} else {
			friends = append(friends, response_models.BuildUserSummary(&requests[i].Sender))
		}
	}
	return friends, nil
}

func (s *FriendService) ListFriendRequests(ctx context.Context, userID uuid.UUID) ([]response_models.FriendRequestResponse, error) {

	requests, err := s.friendRepo.ListPendingForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FriendRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *response_models.BuildFriendRequestResponse(&requests[i]))
	}
	return out, nil
}
