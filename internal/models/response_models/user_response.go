package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
)

type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func BuildUserSummary(u *db_models.User) UserSummary {
	return UserSummary{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}

func BuildUserSummaries(users []db_models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, BuildUserSummary(&users[i]))
	}
	return out
}
