package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
)

type BudgetResponse struct {
	ID          string  `json:"id"`
	TripID      string  `json:"trip_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func BuildBudgetResponse(b *db_models.Budget) *BudgetResponse {
	return &BudgetResponse{
		ID:          b.ID.String(),
		TripID:      b.TripID.String(),
		Amount:      b.Amount,
		Currency:    b.Currency,
		Category:    b.Category,
		Description: b.Description,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(b.CreatedAt)),
		UpdatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(b.UpdatedAt)),
	}
}

func BuildBudgetResponses(budgets []db_models.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, *BuildBudgetResponse(&budgets[i]))
	}
	return out
}
