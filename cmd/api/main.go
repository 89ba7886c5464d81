// @title Cognitive Pathways API
// @version 1.0
// @description Career and education guidance API: quizzes, AI recommendations and reference data.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "cognitive-pathways/cmd/api/docs"
	"cognitive-pathways/internal/config"
	"cognitive-pathways/internal/database"
	"cognitive-pathways/internal/handler"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/middleware"
	"cognitive-pathways/internal/repository"
	"cognitive-pathways/internal/service"
	"cognitive-pathways/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.NewPostgresDB(ctx, cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	userRepository := repository.NewSQLXUserRepository(db)
	questionRepository := repository.NewSQLXQuestionRepository(db)
	attemptRepository := repository.NewSQLXQuizAttemptRepository(db)
	refDataRepository := repository.NewSQLXRefDataRepository(db)

	questionCache, closeCache := newQuestionCache(ctx, cfg)
	defer closeCache()

	engine, closeEngine := newRecommendationEngine(ctx, cfg.Recommender)
	defer closeEngine()

	validator := validation.NewValidator()
	authService := service.NewAuthService(cfg.Auth)
	userService := service.NewUserService(userRepository, authService, validator)
	quizService := service.NewQuizService(questionRepository, attemptRepository, questionCache, engine, cfg)
	refDataService := service.NewRefDataService(refDataRepository)
	appLogger.Info("Services initialized",
		zap.String("persistence_mode", cfg.Quiz.PersistenceMode),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.String("recommender", cfg.Recommender.Provider))

	app := newApp(cfg, handler.Handlers{
		User:    handler.NewUserHandler(userService),
		Quiz:    handler.NewQuizHandler(quizService),
		RefData: handler.NewRefDataHandler(refDataService),
		Auth:    authService,
		Env:     cfg.Env,
	}, middleware.NewValidationMiddleware(validator))

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully",
		zap.Int64("reconcile_failures", quizService.ReconcileFailures()))
}

// newApp builds the Fiber application with global middleware and every route.
func newApp(cfg *config.Config, h handler.Handlers, vm *middleware.ValidationMiddleware) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(!cfg.IsProduction()),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app.Group("/api"), h, vm)
	return app
}
