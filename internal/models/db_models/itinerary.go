package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time

	Locations      []Location       `gorm:"foreignKey:ItineraryID"`
	Transportation []Transportation `gorm:"foreignKey:ItineraryID"`
	Activities     []Activity       `gorm:"foreignKey:ItineraryID"`
	Trips          []Trip           `gorm:"many2many:itinerary_trips"`
}
