package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Dates pins a trip to a single confirmed date range. The unique index keeps it
// at one row per trip.
type Dates struct {
	BaseModel
	TripID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	StartDate time.Time
	EndDate   time.Time
}
