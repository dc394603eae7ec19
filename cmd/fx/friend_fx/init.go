package friend_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/repositories"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideFriendService, provideFriendRepo)

func provideFriendRepo(db *gorm.DB) repositories.FriendRepository {
	return repositories.NewFriendRepository(db)
}

func provideFriendService(friendRepo repositories.FriendRepository, accountRepo repositories.AccountRepository) services.FriendServiceInterface {
	return services.NewFriendService(friendRepo, accountRepo)
}
