package db_models

import "github.com/google/uuid"

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

type FriendRequest struct {
	BaseModel
	SenderID   uuid.UUID `gorm:"type:uuid;index"`
	ReceiverID uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"default:pending"`

	Sender   User `gorm:"foreignKey:SenderID"`
	Receiver User `gorm:"foreignKey:ReceiverID"`
}
