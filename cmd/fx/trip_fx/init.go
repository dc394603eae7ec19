package trip_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideTripService, provideTripAccessService, provideTripRepo)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripAccessService(tripRepo repositories.TripRepository, logger *zap.Logger) services.TripAccessServiceInterface {
	return services.NewTripAccessService(tripRepo, logger)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	accessService services.TripAccessServiceInterface,
	logger *zap.Logger) services.TripServiceInterface {

	return services.NewTripService(tripRepo, accessService, logger)
}
