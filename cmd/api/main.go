package main

import (
	"net/http"
	"time"

	_ "github.com/divineverse/divineverse-api/docs"
	"github.com/divineverse/divineverse-api/internal/config"
	"github.com/divineverse/divineverse-api/internal/gemini"
	"github.com/divineverse/divineverse-api/internal/gita"
	"github.com/divineverse/divineverse-api/internal/handler"
	"github.com/divineverse/divineverse-api/internal/krishna"
	"github.com/divineverse/divineverse-api/internal/middleware"
	"github.com/divineverse/divineverse-api/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limit "github.com/yangxikun/gin-limit-by-key"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// @title           DivineVerse API
// @version         1.0
// @description     Bhagavad Gita content and divine chat backend.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer store.Close()

	gem := gemini.NewClient(cfg.GeminiAPIKey, logger)
	krishnaSvc := krishna.NewService(gem, store, logger)
	gitaSvc := gita.NewService(logger)

	authHandler := handler.NewAuthHandler(store, []byte(cfg.JWTSecret), logger)
	krishnaHandler := handler.NewKrishnaHandler(krishnaSvc, store, cfg.GoogleCredentials, logger)
	chatWSHandler := handler.NewChatWSHandler(krishnaSvc, []byte(cfg.JWTSecret), logger)
	gitaHandler := handler.NewGitaHandler(gitaSvc, cfg.GoogleCredentials, logger)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Per-IP limit on the chat endpoints, independent of the upstream quota
	askLimiter := limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(time.Second), 5), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"success":   false,
			"response":  "Krishna rests for a while, dear one. Too many prayers at once — please try again shortly.",
			"reference": "—",
		})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running successfully!"})
	})

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	krishnaRoutes := router.Group("/api/krishna")
	krishnaRoutes.Use(askLimiter, middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
	{
		krishnaRoutes.POST("/ask", krishnaHandler.Ask)
		krishnaRoutes.POST("/ask-voice", krishnaHandler.AskVoice)
		krishnaRoutes.GET("/history", krishnaHandler.History)
	}

	gitaRoutes := router.Group("/api/gita")
	{
		gitaRoutes.GET("/chapters", gitaHandler.Chapters)
		gitaRoutes.GET("/chapter/:num", gitaHandler.Chapter)
		gitaRoutes.GET("/slok/:chapter/:verse", gitaHandler.Slok)
		gitaRoutes.GET("/slok/:chapter/:verse/audio", gitaHandler.SlokAudio)
	}

	router.GET("/ws/chat", chatWSHandler.HandleChat)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
