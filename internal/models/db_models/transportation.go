package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Transportation struct {
	BaseModel
	ItineraryID   uuid.UUID `gorm:"type:uuid;index"`
	Type          string
	FromLocation  string
	ToLocation    string
	DepartureDate *time.Time
	DepartureTime string
	ArrivalDate   *time.Time
	ArrivalTime   string
	Provider      string
}
