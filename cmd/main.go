package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/config"
	"github.com/lshigami/quizdesk/database"
	_ "github.com/lshigami/quizdesk/docs" // Swagger docs - generated by swag init
	"github.com/lshigami/quizdesk/internal/controller"
	adminctrl "github.com/lshigami/quizdesk/internal/controller/admin"
	userctrl "github.com/lshigami/quizdesk/internal/controller/user"
	"github.com/lshigami/quizdesk/internal/logger"
	"github.com/lshigami/quizdesk/internal/middleware"
	"github.com/lshigami/quizdesk/internal/model"
	"github.com/lshigami/quizdesk/internal/monitoring"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/lshigami/quizdesk/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizDesk API
// @version 1.0
// @description Quiz administration API: topics, choice and text questions, shuffled quizzes and graded submissions.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin JWT.
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTopicRepository,
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
			repository.NewAdminRepository,
			repository.NewStatsRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoreConverterService,
			service.NewTopicService,
			service.NewQuestionService,
			service.NewQuizService,
			func(
				topicRepo repository.TopicRepository,
				submissionRepo repository.SubmissionRepository,
				sc service.ScoreConverterService,
				cfg *config.Config,
			) service.SubmissionService {
				return service.NewSubmissionService(topicRepo, submissionRepo, sc, cfg.Quiz.ScoreWeight)
			},
			service.NewResetTokenStore,
			service.NewAuthService,
			NewGeminiService,
			service.NewQuestionDraftService,
			service.NewStatsService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewHealthController,
			controller.NewAuthController,
			adminctrl.NewAdminTopicController,
			adminctrl.NewAdminQuestionController,
			adminctrl.NewAdminSubmissionController,
			adminctrl.NewAdminAccountController,
			userctrl.NewUserTopicController,
			userctrl.NewUserQuizController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// NewGeminiService closes the Gemini client with the application.
func NewGeminiService(lc fx.Lifecycle, cfg *config.Config) (service.GeminiService, error) {
	gemini, err := service.NewGeminiService(cfg)
	if err != nil || gemini == nil {
		return gemini, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return gemini.Close()
		},
	})
	return gemini, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	logger.Configure(cfg.Log.Level, cfg.Log.File)

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	monitoring.Init()
	r.Use(monitoring.MetricsMiddleware())

	origins := cfg.Server.CORSAllowedOrigins
	allowAll := len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  allowAll,
		AllowOrigins:     allowedOrigins(allowAll, origins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", monitoring.PrometheusHandler())

	return r
}

func allowedOrigins(allowAll bool, origins []string) []string {
	if allowAll {
		return nil
	}
	return origins
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	healthCtrl *controller.HealthController,
	authCtrl *controller.AuthController,
	adminTopicCtrl *adminctrl.AdminTopicController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
	adminSubmissionCtrl *adminctrl.AdminSubmissionController,
	adminAccountCtrl *adminctrl.AdminAccountController,
	userTopicCtrl *userctrl.UserTopicController,
	userQuizCtrl *userctrl.UserQuizController,
) {
	router.GET("/health", healthCtrl.Health)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	api := router.Group("/api/v1")
	api.GET("/health", healthCtrl.Health)

	authGroup := api.Group("/auth", limiter.Middleware())
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/forgot-password", authCtrl.ForgotPassword)
		authGroup.POST("/reset-password", authCtrl.ResetPassword)
	}

	// User Routes (prefixed with /api/v1)
	{
		api.GET("/topics", userTopicCtrl.GetAllTopics)
		api.GET("/topics/:id", userTopicCtrl.GetTopic)
		api.GET("/topics/code/:code", userTopicCtrl.GetTopicByCode)
		api.GET("/questions", userTopicCtrl.GetQuestions)
		api.GET("/questions/:id", userTopicCtrl.GetQuestion)

		api.GET("/quiz/:code", userQuizCtrl.GetQuiz)
		api.POST("/submissions", limiter.Middleware(), userQuizCtrl.SubmitQuiz)
		api.GET("/submissions/:id", userQuizCtrl.GetSubmissionResult)
	}

	// Admin Routes (prefixed with /api/v1/admin)
	adminGroup := api.Group("/admin", middleware.AdminAuth(cfg.JWT.Secret))
	{
		adminGroup.GET("/me", adminAccountCtrl.Me)
		adminGroup.POST("/password", adminAccountCtrl.ChangePassword)

		topics := adminGroup.Group("/topics")
		topics.POST("", adminTopicCtrl.CreateTopic)
		topics.GET("", adminTopicCtrl.GetAllTopics)
		topics.GET("/:id", adminTopicCtrl.GetTopic)
		topics.PUT("/:id", adminTopicCtrl.UpdateTopic)
		topics.DELETE("/:id", adminTopicCtrl.DeleteTopic)
		topics.POST("/:id/question-drafts", adminTopicCtrl.DraftQuestions)

		questions := adminGroup.Group("/questions")
		questions.POST("", adminQuestionCtrl.CreateQuestion)
		questions.GET("", adminQuestionCtrl.GetAllQuestions)
		questions.GET("/:id", adminQuestionCtrl.GetQuestion)
		questions.PUT("/:id", adminQuestionCtrl.UpdateQuestion)
		questions.DELETE("/:id", adminQuestionCtrl.DeleteQuestion)

		submissions := adminGroup.Group("/submissions")
		submissions.GET("", adminSubmissionCtrl.GetAllSubmissions)
		submissions.GET("/:id", adminSubmissionCtrl.GetSubmission)
		submissions.DELETE("/:id", adminSubmissionCtrl.DeleteSubmission)

		adminGroup.GET("/dashboard/stats", adminSubmissionCtrl.GetDashboardStats)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizDesk API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Admin{},
		&model.Topic{},
		&model.Question{},
		&model.Submission{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
