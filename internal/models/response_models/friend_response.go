package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
)

type FriendRequestResponse struct {
	ID        string      `json:"id"`
	Sender    UserSummary `json:"sender"`
	Receiver  UserSummary `json:"receiver"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
}

func BuildFriendRequestResponse(fr *db_models.FriendRequest) *FriendRequestResponse {
	return &FriendRequestResponse{
		ID:        fr.ID.String(),
		Sender:    BuildUserSummary(&fr.Sender),
		Receiver:  BuildUserSummary(&fr.Receiver),
		Status:    fr.Status,
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(fr.CreatedAt)),
	}
}
