package services

import (
	"fmt"
	"testing"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/infra"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/models/db_models"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack against an in-memory database.
type testEnv struct {
	db *gorm.DB

	trips         TripServiceInterface
	itineraries   ItineraryServiceInterface
	collaborators CollaboratorServiceInterface
	accounts      AccountServiceInterface
	friends       FriendServiceInterface
	destinations  DestinationServiceInterface
	budgets       BudgetServiceInterface
	calendar      CalendarServiceInterface
	dates         DatesServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	log := zap.NewNop()

	tripRepo := repositories.NewTripRepository(db)
	itineraryRepo := repositories.NewItineraryRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	destinationRepo := repositories.NewDestinationRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	calendarRepo := repositories.NewCalendarRepository(db)
	datesRepo := repositories.NewDatesRepository(db)

	access := NewTripAccessService(tripRepo, log)

	return &testEnv{
		db:            db,
		trips:         NewTripService(tripRepo, access, log),
		itineraries:   NewItineraryService(itineraryRepo, log),
		collaborators: NewCollaboratorService(tripRepo, accountRepo, access),
		accounts:      NewAccountService(accountRepo, log),
		friends:       NewFriendService(friendRepo, accountRepo),
		destinations:  NewDestinationService(destinationRepo, access),
		budgets:       NewBudgetService(budgetRepo, access),
		calendar:      NewCalendarService(calendarRepo, access),
		dates:         NewDatesService(datesRepo, access),
	}
}

func (e *testEnv) seedUser(t *testing.T, username string) *db_models.User {
	t.Helper()

	user := &db_models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) seedTrip(t *testing.T, owner *db_models.User, title string) *db_models.Trip {
	t.Helper()

	trip := &db_models.Trip{
		UserID: owner.ID,
		Title:  title,
	}
	require.NoError(t, e.db.Create(trip).Error)
	return trip
}

func (e *testEnv) addCollaborator(t *testing.T, trip *db_models.Trip, user *db_models.User) {
	t.Helper()

	require.NoError(t, e.db.Model(trip).Association("Collaborators").Append(user))
}
