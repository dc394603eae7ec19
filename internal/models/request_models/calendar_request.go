package request_models

import "time"

type CreateCalendarEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Description string    `json:"description"`
}

type UpdateCalendarEventRequest struct {
	Title       *string    `json:"title"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Description *string    `json:"description"`
}
