package db_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/infra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
