package collaborator_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideCollaboratorService)

func provideCollaboratorService(
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	accessService services.TripAccessServiceInterface) services.CollaboratorServiceInterface {

	return services.NewCollaboratorService(tripRepo, accountRepo, accessService)
}
