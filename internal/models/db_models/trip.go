package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	Location    string
	Budget      float64
	StartDate   time.Time
	EndDate     time.Time
	Color       string
	ImageURL    string

	User           User            `gorm:"foreignKey:UserID"`
	Destinations   []Destination   `gorm:"foreignKey:TripID"`
	Budgets        []Budget        `gorm:"foreignKey:TripID"`
	CalendarEvents []CalendarEvent `gorm:"foreignKey:TripID"`
	Dates          *Dates          `gorm:"foreignKey:TripID"`
	Itineraries    []Itinerary     `gorm:"many2many:itinerary_trips"`
	Collaborators  []User          `gorm:"many2many:trip_collaborators"`
}
