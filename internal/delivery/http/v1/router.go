package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC    domain.ProfileUsecase
	PrivacyUC    domain.PrivacySettingsUsecase
	ExperienceUC domain.WorkExperienceUsecase
	EducationUC  domain.EducationUsecase
	CVUC         domain.CVUsecase
	PortfolioUC  domain.PortfolioUsecase
	SearchUC     domain.SearchUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	globalLimit := middleware.DefaultRateLimitConfig()
	globalLimit.Limit = deps.Config.RateLimitGlobalThreshold
	globalLimit.Window = window

	uploadLimit := middleware.UploadRateLimitConfig()
	uploadLimit.Limit = deps.Config.RateLimitUploadThreshold
	uploadLimit.Window = window

	verifyLimit := middleware.VerifyRateLimitConfig()
	verifyLimit.Window = window

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(globalLimit))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewProfileHandler(protected, deps.ProfileUC)
		NewPrivacyHandler(protected, deps.PrivacyUC)
		NewExperienceHandler(protected, deps.ExperienceUC)
		NewEducationHandler(protected, deps.EducationUC)
		NewCVHandler(protected, deps.CVUC, middleware.RateLimitMiddleware(uploadLimit))
		NewPortfolioHandler(protected, deps.PortfolioUC, middleware.RateLimitMiddleware(verifyLimit))
		NewSearchHandler(protected, deps.SearchUC)
	}

	return r
}
