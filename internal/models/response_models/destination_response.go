package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
)

type DestinationResponse struct {
	ID          string `json:"id"`
	TripID      string `json:"trip_id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func BuildDestinationResponse(d *db_models.Destination) *DestinationResponse {
	return &DestinationResponse{
		ID:          d.ID.String(),
		TripID:      d.TripID.String(),
		Name:        d.Name,
		Location:    d.Location,
		Description: d.Description,
		Order:       d.Order,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(d.CreatedAt)),
		UpdatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(d.UpdatedAt)),
	}
}

func BuildDestinationResponses(destinations []db_models.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, *BuildDestinationResponse(&destinations[i]))
	}
	return out
}
