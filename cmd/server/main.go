package main

import (
	"context"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"postforge/config"
	"postforge/controllers"
	"postforge/middlewares"
	"postforge/routes"
	"postforge/services"
	"postforge/store"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}

	logger := newLogger(os.Getenv("APP_ENV"))

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}

	services.InitContentService(cfg, logger)

	verifier, err := services.NewCognitoVerifier(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize token verifier")
	}

	sessionStore := store.New()
	sessionStore.Seed()

	router := setupRouter(cfg, verifier, sessionStore)
	port := strconv.Itoa(cfg.Server.Port)
	logger.Info().Str("port", port).Msg("server starting")

	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func newLogger(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "dev" || appEnv == "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
}

func setupRouter(cfg *config.Config, verifier services.TokenVerifier, sessionStore *store.Store) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.Cors.AllowedOrigins
	if cfg.Cors.DeploymentOrigin != "" {
		origins = append(origins, cfg.Cors.DeploymentOrigin)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	brand := controllers.NewBrandController(sessionStore)
	plans := controllers.NewPlanController(sessionStore)
	variations := controllers.NewVariationController(sessionStore)
	workflow := controllers.NewWorkflowController(sessionStore)

	// Every operation either reaches the paid model gateway or touches
	// session state, so the whole surface sits behind auth.
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(verifier))
	{
		routes.SetupContentRoutes(auth, brand)
		routes.SetupSessionRoutes(auth, plans, variations, workflow)
	}

	return router
}
