package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	BaseModel
	ItineraryID uuid.UUID  `gorm:"type:uuid;index"`
	LocationID  *uuid.UUID `gorm:"type:uuid"`
	Name        string
	Date        *time.Time
	Time        string
	Duration    string
	Location    string
	Notes       string
	Category    string
	Latitude    *float64
	Longitude   *float64
}
