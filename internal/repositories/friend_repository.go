package repositories

import (
	"context"
	"errors"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FriendRepository interface {
	InsertRequest(ctx context.Context, request *db_models.FriendRequest) error
	FindRequestByID(ctx context.Context, requestID uuid.UUID) (*db_models.FriendRequest, error)
	FindPendingBetween(ctx context.Context, a uuid.UUID, b uuid.UUID) (*db_models.FriendRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status string) error
	ListPendingForUser(ctx context.Context, receiverID uuid.UUID) ([]db_models.FriendRequest, error)
	ListAcceptedForUser(ctx context.Context, userID uuid.UUID) ([]db_models.FriendRequest, error)
	AreFriends(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (f *friendRepository) InsertRequest(ctx context.Context, request *db_models.FriendRequest) error {
	return f.db.WithContext(ctx).Create(request).Error
}

func (f *friendRepository) FindRequestByID(ctx context.Context, requestID uuid.UUID) (*db_models.FriendRequest, error) {

	var request db_models.FriendRequest
	err := f.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		First(&request, "id = ?", requestID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func (f *friendRepository) FindPendingBetween(ctx context.Context, a uuid.UUID, b uuid.UUID) (*db_models.FriendRequest, error) {

	var request db_models.FriendRequest
	err := f.db.WithContext(ctx).
		Where("status = ?", db_models.FriendRequestPending).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func (f *friendRepository) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status string) error {
	return f.db.WithContext(ctx).
		Model(&db_models.FriendRequest{}).
		Where("id = ?", requestID).
		Update("status", status).Error
}

func (f *friendRepository) ListPendingForUser(ctx context.Context, receiverID uuid.UUID) ([]db_models.FriendRequest, error) {

	var requests []db_models.FriendRequest
	err := f.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("receiver_id = ? AND status = ?", receiverID, db_models.FriendRequestPending).
		Order("created_at").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (f *friendRepository) ListAcceptedForUser(ctx context.Context, userID uuid.UUID) ([]db_models.FriendRequest, error) {

	var requests []db_models.FriendRequest
	err := f.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("status = ?", db_models.FriendRequestAccepted).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (f *friendRepository) AreFriends(ctx context.Context, a uuid.UUID, b uuid.UUID) (bool, error) {

	var count int64
	err := f.db.WithContext(ctx).
		Model(&db_models.FriendRequest{}).
		Where("status = ?", db_models.FriendRequestAccepted).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
