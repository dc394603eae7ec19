package db_models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string

	Trips              []Trip      `gorm:"foreignKey:UserID"`
	Itineraries        []Itinerary `gorm:"foreignKey:UserID"`
	CollaboratingTrips []Trip      `gorm:"many2many:trip_collaborators"`
}
