package db_models

import (
	"time"

	"github.com/google/uuid"
)

type CalendarEvent struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Description string
}
