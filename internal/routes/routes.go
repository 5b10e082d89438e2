package routes

import (
	"github.com/fitmatch-dev/TrainerMatchBack/internal/config"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/handlers"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/middleware"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/repository"
	"github.com/fitmatch-dev/TrainerMatchBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	clientProfileRepo := repository.NewClientProfileRepository(db)
	trainerProfileRepo := repository.NewTrainerProfileRepository(db)

	authHandler := handlers.NewAuthHandler(
		db,
		userRepo,
		clientProfileRepo,
		trainerProfileRepo,
		cfg.JWTSecret,
	)
	onboardingHandler := handlers.NewOnboardingHandler(clientProfileRepo, trainerProfileRepo)
	profileHandler := handlers.NewProfileHandler(clientProfileRepo, trainerProfileRepo)
	matchmakingService := services.NewMatchmakingService(trainerProfileRepo)
	trainerDiscoveryHandler := handlers.NewTrainerDiscoveryHandler(trainerProfileRepo, clientProfileRepo, matchmakingService)

	if cfg.EnableMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	clients := authProtected.Group("/clients")
	clients.Post("/onboarding", onboardingHandler.ClientOnboarding)
	clients.Get("/profile", profileHandler.GetClientProfile)
	clients.Put("/profile", profileHandler.UpdateClientProfile)

	trainers := authProtected.Group("/trainers")
	trainers.Get("", trainerDiscoveryHandler.ListTrainers)
	trainers.Post("/onboarding", onboardingHandler.TrainerOnboarding)
	trainers.Get("/profile", profileHandler.GetTrainerProfile)
	trainers.Put("/profile", profileHandler.UpdateTrainerProfile)
	trainers.Get("/recommended", trainerDiscoveryHandler.GetRecommendedTrainers)
	trainers.Get("/:id", trainerDiscoveryHandler.GetTrainerDetail)
	trainers.Get("/:id/match", trainerDiscoveryHandler.GetMatchDetail)
}
