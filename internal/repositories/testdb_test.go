package repositories

import (
	"fmt"
	"testing"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/infra"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *db_models.User {
	t.Helper()

	user := &db_models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTrip(t *testing.T, db *gorm.DB, owner *db_models.User, title string) *db_models.Trip {
	t.Helper()

	trip := &db_models.Trip{
		UserID: owner.ID,
		Title:  title,
	}
	require.NoError(t, db.Create(trip).Error)
	return trip
}

func seedItinerary(t *testing.T, db *gorm.DB, owner *db_models.User, name string) *db_models.Itinerary {
	t.Helper()

	itinerary := &db_models.Itinerary{
		UserID: owner.ID,
		Name:   name,
	}
	require.NoError(t, db.Create(itinerary).Error)
	return itinerary
}
