package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	Tokens        *auth.Service
	Audit         *security.AuditLogger
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Cookie auth needs credentialed CORS, so origins are explicit
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{deps.Config.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}

	// Global Middlewares
	r.Use(cors.New(corsConfig)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestDeadline(time.Duration(deps.Config.RequestTimeoutSeconds) * time.Second))

	// Health Check
	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Job board API", nil)
	})
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rateLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitTokenThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:token:",
	}, deps.Audit)

	public := r.Group("")

	// Applicant-scoped reads sit behind the verifier gate
	gated := r.Group("")
	gated.Use(middleware.VerifyToken(deps.Tokens, deps.Audit))

	NewAuthHandler(public, deps.AuthUC, rateLimiter)
	NewJobHandler(public, deps.JobUC)
	NewApplicationHandler(public, gated, deps.ApplicationUC)

	return r
}
