package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
)

type DatesResponse struct {
	ID        string `json:"id"`
	TripID    string `json:"trip_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func BuildDatesResponse(d *db_models.Dates) *DatesResponse {
	return &DatesResponse{
		ID:        d.ID.String(),
		TripID:    d.TripID.String(),
		StartDate: utils.FormatRFC3339(d.StartDate),
		EndDate:   utils.FormatRFC3339(d.EndDate),
	}
}
