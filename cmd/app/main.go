package main

import (
	"context"
	"log"
	"os"

	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/account_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/budget_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/calendar_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/collaborator_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/controllers_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/dates_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/db_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/destination_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/friend_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/itinerary_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/logger_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/cmd/fx/trip_fx"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/api/controllers"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/internal/infra"
	"github.com/SDSU-CompE-561-Spring-2025/interactive-travel-planner/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		collaborator_fx.Module,
		friend_fx.Module,
		destination_fx.Module,
		budget_fx.Module,
		calendar_fx.Module,
		dates_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	collaboratorController *controllers.CollaboratorController,
	friendController *controllers.FriendController,
	destinationController *controllers.DestinationController,
	budgetController *controllers.BudgetController,
	calendarController *controllers.CalendarController,
	datesController *controllers.DatesController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		tripController,
		itineraryController,
		collaboratorController,
		friendController,
		destinationController,
		budgetController,
		calendarController,
		datesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	collaboratorController *controllers.CollaboratorController,
	friendController *controllers.FriendController,
	destinationController *controllers.DestinationController,
	budgetController *controllers.BudgetController,
	calendarController *controllers.CalendarController,
	datesController *controllers.DatesController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	api := r.Group("/")
	api.Use(middleware.JWTAuthMiddleware())

	usersGroup := api.Group("/users")
	usersGroup.GET("/me", accountController.GetMe)
	usersGroup.GET("/search", accountController.SearchUsers)
	usersGroup.GET("/:userId", accountController.GetUser)

	tripsGroup := api.Group("/trips")
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)

	tripsGroup.GET("/:tripId/collaborators", collaboratorController.ListCollaborators)
	tripsGroup.POST("/:tripId/collaborators/:userId", collaboratorController.AddCollaborator)
	tripsGroup.DELETE("/:tripId/collaborators/:userId", collaboratorController.RemoveCollaborator)

	tripsGroup.POST("/:tripId/destinations", destinationController.CreateDestination)
	tripsGroup.GET("/:tripId/destinations", destinationController.ListDestinations)
	tripsGroup.POST("/:tripId/budgets", budgetController.CreateBudget)
	tripsGroup.GET("/:tripId/budgets", budgetController.ListBudgets)
	tripsGroup.POST("/:tripId/calendar", calendarController.CreateEvent)
	tripsGroup.GET("/:tripId/calendar", calendarController.ListEvents)
	tripsGroup.POST("/:tripId/dates", datesController.CreateDates)
	tripsGroup.GET("/:tripId/dates", datesController.GetDates)

	api.PUT("/destinations/:destinationId", destinationController.UpdateDestination)
	api.DELETE("/destinations/:destinationId", destinationController.DeleteDestination)
	api.PUT("/budgets/:budgetId", budgetController.UpdateBudget)
	api.DELETE("/budgets/:budgetId", budgetController.DeleteBudget)
	api.PUT("/calendar/:eventId", calendarController.UpdateEvent)
	api.DELETE("/calendar/:eventId", calendarController.DeleteEvent)
	api.PUT("/dates/:datesId", datesController.UpdateDates)
	api.DELETE("/dates/:datesId", datesController.DeleteDates)

	itinerariesGroup := api.Group("/itineraries")
	itinerariesGroup.POST("", itineraryController.CreateItinerary)
	itinerariesGroup.GET("", itineraryController.ListItineraries)
	itinerariesGroup.GET("/:itineraryId", itineraryController.GetItinerary)
	itinerariesGroup.PUT("/:itineraryId", itineraryController.UpdateItinerary)
	itinerariesGroup.DELETE("/:itineraryId", itineraryController.DeleteItinerary)

	friendsGroup := api.Group("/friends")
	friendsGroup.GET("", friendController.ListFriends)
	friendsGroup.GET("/requests", friendController.ListFriendRequests)
	friendsGroup.POST("/requests", friendController.SendFriendRequest)
	friendsGroup.POST("/requests/:requestId/accept", friendController.AcceptFriendRequest)
	friendsGroup.POST("/requests/:requestId/reject", friendController.RejectFriendRequest)
}
