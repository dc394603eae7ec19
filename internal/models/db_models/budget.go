package db_models

import "github.com/google/uuid"

type Budget struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Amount      float64
	Currency    string
	Description string
	Category    string
}
