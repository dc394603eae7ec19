package response_models

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/utils"
)

type CalendarEventResponse struct {
	ID          string `json:"id"`
	TripID      string `json:"trip_id"`
	Title       string `json:"title"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description,omitempty"`
}

func BuildCalendarEventResponse(e *db_models.CalendarEvent) *CalendarEventResponse {
	return &CalendarEventResponse{
		ID:          e.ID.String(),
		TripID:      e.TripID.String(),
		Title:       e.Title,
		StartTime:   utils.FormatRFC3339(e.StartTime),
		EndTime:     utils.FormatRFC3339(e.EndTime),
		Description: e.Description,
	}
}

func BuildCalendarEventResponses(events []db_models.CalendarEvent) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(events))
	for i := range events {
		out = append(out, *BuildCalendarEventResponse(&events[i]))
	}
	return out
}
