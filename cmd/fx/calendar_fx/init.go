package calendar_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCalendarService, provideCalendarRepo)

func provideCalendarRepo(db *gorm.DB) repositories.CalendarRepository {
	return repositories.NewCalendarRepository(db)
}

func provideCalendarService(calendarRepo repositories.CalendarRepository, accessService services.TripAccessServiceInterface) services.CalendarServiceInterface {
	return services.NewCalendarService(calendarRepo, accessService)
}
