package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"
	"go-jobboard-backend/pkg/verifier"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Candidate profile, CV and portfolio backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	privacyRepo := postgres.NewPrivacyRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)
	portfolioRepo := postgres.NewPortfolioRepository(dbPool)
	searchRepo := postgres.NewSearchRepository(dbPool)

	// 6. Setup Validation Engine and Link Verifier
	engine := validation.NewEngine()
	linkVerifier := verifier.New(verifier.WithTimeout(time.Duration(cfg.VerifierTimeoutSeconds) * time.Second))

	// 7. Setup UseCases
	profileUC := usecase.NewProfileUsecase(profileRepo, engine)
	privacyUC := usecase.NewPrivacyUsecase(privacyRepo, engine)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, engine)
	educationUC := usecase.NewEducationUsecase(educationRepo, engine)
	cvUC := usecase.NewCVUsecase(cvRepo, engine)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, engine, linkVerifier)
	searchUC := usecase.NewSearchUsecase(searchRepo, engine)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:    profileUC,
		PrivacyUC:    privacyUC,
		ExperienceUC: experienceUC,
		EducationUC:  educationUC,
		CVUC:         cvUC,
		PortfolioUC:  portfolioUC,
		SearchUC:     searchUC,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
