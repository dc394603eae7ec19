package controllers_fx

import (
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewCollaboratorController),
	fx.Provide(controllers.NewFriendController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewBudgetController),
	fx.Provide(controllers.NewCalendarController),
	fx.Provide(controllers.NewDatesController))
