package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"studytrack/api/internal/config"
	"studytrack/api/internal/middleware"
	"studytrack/api/internal/repository"
	"studytrack/api/internal/service"
)

type HandlerSet struct {
	log          zerolog.Logger
	cfg          *config.AppConfig
	authService  *service.AuthService
	studyService *service.StudyService
	statsService *service.StatsService
	db           *pgxpool.Pool
	cache        *redis.Client
	users        *repository.UserRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewStudySessionRepository(db)
	resourceRepo := repository.NewResourceRepository(db)

	auth := service.NewAuthService(userRepo, cfg, log)
	stats := service.NewStatsService(sessionRepo, cache, log)
	study := service.NewStudyService(sessionRepo, resourceRepo, stats, log)

	return HandlerSet{
		log:          log,
		cfg:          cfg,
		authService:  auth,
		studyService: study,
		statsService: stats,
		db:           db,
		cache:        cache,
		users:        userRepo,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/sign-up", h.SignUp)
		auth.POST("/sign-in", h.SignIn)
		auth.POST("/sign-out", h.SignOut)

		protected := v1.Group("/auth")
		protected.Use(middleware.Auth(h.cfg, h.users))
		protected.GET("/me", h.Me)
	}

	study := v1.Group("/study-sessions")
	study.Use(middleware.Auth(h.cfg, h.users))
	study.POST("", h.CreateStudySession)
	study.GET("", h.ListStudySessions)

	resources := v1.Group("/resources")
	resources.Use(middleware.Auth(h.cfg, h.users))
	resources.POST("", h.CreateResource)
	resources.GET("", h.ListResources)

	stats := v1.Group("/stats")
	stats.Use(middleware.Auth(h.cfg, h.users))
	stats.GET("/summary", h.StatsSummary)
}
