package db_models

import "github.com/google/uuid"

type Destination struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Location    string
	Description string
	Order       int
}
