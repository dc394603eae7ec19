package budget_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideBudgetService, provideBudgetRepo)

func provideBudgetRepo(db *gorm.DB) repositories.BudgetRepository {
	return repositories.NewBudgetRepository(db)
}

func provideBudgetService(budgetRepo repositories.BudgetRepository, accessService services.TripAccessServiceInterface) services.BudgetServiceInterface {
	return services.NewBudgetService(budgetRepo, accessService)
}
