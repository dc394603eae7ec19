package request_models

type SendFriendRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required,uuid4"`
}
