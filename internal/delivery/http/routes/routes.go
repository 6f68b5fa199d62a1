package routes

import (
	"log"

	"hiretrack/internal/config"
	"hiretrack/internal/database"
	"hiretrack/internal/delivery/http/handler"
	"hiretrack/internal/delivery/http/middleware"
	"hiretrack/internal/infrastructure/persistence/postgres"
	"hiretrack/internal/pkg/jwt"
	"hiretrack/internal/usecase"
	"hiretrack/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers onto the app. Paths
// match what the recruitment dashboard and question generator already call.
func Register(app *fiber.App, cfg config.Config, db database.DB, viewCache usecase.ViewCache, hub *ws.Hub, logger *log.Logger) {
	if app == nil {
		return
	}

	candidateRepo := postgres.NewCandidateRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	candidateUC := usecase.NewCandidateService(candidateRepo, viewCache)
	importUC := usecase.NewBulkImportUsecase(candidateRepo, logger)
	viewUC := usecase.NewViewUsecase(candidateRepo, jobRepo, viewCache, logger)
	jobUC := usecase.NewJobService(jobRepo, candidateRepo, viewCache)
	feedbackUC := usecase.NewFeedbackService(feedbackRepo)
	authUC := usecase.NewAuthUsecase(adminRepo, jwtSvc)

	candidateHandler := handler.NewCandidateHandler(candidateUC, importUC, viewUC)
	jobHandler := handler.NewJobHandler(jobUC)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUC)
	authHandler := handler.NewAuthHandler(authUC)
	healthHandler := handler.NewHealthHandler(db)

	healthHandler.RegisterRoutes(app)

	api := app.Group("/api")

	authHandler.RegisterRoutes(api.Group("/admin"))

	protected := api
	if cfg.App.RequireAuth {
		authMw := middleware.NewAuthMiddleware(jwtSvc)
		protected = api.Group("", authMw.Middleware())
	}

	candidateHandler.RegisterRoutes(protected.Group("/candidates"))
	jobHandler.RegisterRoutes(protected.Group("/jobs"))
	feedbackHandler.RegisterRoutes(protected.Group("/feedback"))

	if hub != nil {
		wsHandler := ws.NewHandler(hub, logger)
		app.Get("/ws/dashboard", wsHandler.HandleDashboardWS)
	}
}
