package infra

import (
	"log"
	"os"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.Itinerary{},
		&db_models.Location{},
		&db_models.Transportation{},
		&db_models.Activity{},
		&db_models.Destination{},
		&db_models.Budget{},
		&db_models.CalendarEvent{},
		&db_models.Dates{},
		&db_models.FriendRequest{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
