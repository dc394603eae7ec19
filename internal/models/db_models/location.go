package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Latitude    float64
	Longitude   float64
	Date        *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	Color       string
	Comments    string
}
