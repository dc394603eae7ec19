package dates_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDatesService, provideDatesRepo)

func provideDatesRepo(db *gorm.DB) repositories.DatesRepository {
	return repositories.NewDatesRepository(db)
}

func provideDatesService(datesRepo repositories.DatesRepository, accessService services.TripAccessServiceInterface) services.DatesServiceInterface {
	return services.NewDatesService(datesRepo, accessService)
}
