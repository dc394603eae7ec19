package account_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, logger)
}
