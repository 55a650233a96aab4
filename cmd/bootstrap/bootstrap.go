package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"practice-site/config"
	deliveryHttp "practice-site/internal/delivery/http"
	"practice-site/internal/delivery/http/handler"
	"practice-site/internal/delivery/http/middleware"
	domainRepo "practice-site/internal/domain/repository"
	"practice-site/internal/infrastructure/cache"
	"practice-site/internal/infrastructure/database"
	"practice-site/internal/repository"
	"practice-site/internal/service"
	"practice-site/internal/usecase"
	"practice-site/pkg/jwt"
	"practice-site/pkg/response"
	"practice-site/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	if cfg.App.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}
	log.Info("Configuration loaded successfully")

	// Initialize document storage
	documents, err := app.newDocumentRepository()
	if err != nil {
		app.Close()
		return nil, err
	}

	// Initialize session storage, Redis when configured
	sessions, err := app.newSessionRepository()
	if err != nil {
		app.Close()
		return nil, err
	}

	httpHandler, err := NewHandler(cfg, log, documents, sessions)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

func (app *App) newDocumentRepository() (domainRepo.DocumentRepository, error) {
	cfg := app.Config
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		return repository.NewPostgresDocumentRepository(db, app.Log)
	default:
		app.Log.WithField("path", cfg.Storage.DataFile).Info("Using file document storage")
		return repository.NewFileDocumentRepository(cfg.Storage.DataFile, app.Log), nil
	}
}

func (app *App) newSessionRepository() (domainRepo.SessionRepository, error) {
	if !app.Config.Redis.Enabled() {
		app.Log.Info("REDIS_HOST not set, admin sessions kept in memory")
		return repository.NewMemorySessionRepository(), nil
	}

	redisClient, err := cache.NewRedisClient(app.Config.Redis, app.Log)
	if err != nil {
		return nil, err
	}
	app.RedisClient = redisClient
	return repository.NewRedisSessionRepository(redisClient), nil
}

// NewHandler wires every layer on top of the given stores and returns the
// HTTP handler serving the API and uploaded files.
func NewHandler(
	cfg *config.Config,
	log *logrus.Logger,
	documents domainRepo.DocumentRepository,
	sessions domainRepo.SessionRepository,
) (http.Handler, error) {
	response.SetDebug(cfg.App.IsDevelopment())

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	auditService := service.NewAuditService(log)
	data := usecase.NewDataAccess(documents, log)

	// Initialize usecases
	authUsecase, err := usecase.NewAuthUsecase(log, cfg.Admin, jwtService, sessions, auditService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize admin credentials: %w", err)
	}
	practiceUsecase := usecase.NewPracticeUsecase(data, log, auditService)
	serviceUsecase := usecase.NewServiceUsecase(data, log, auditService)
	teamUsecase := usecase.NewTeamUsecase(data, log, auditService)
	blogUsecase := usecase.NewBlogUsecase(data, log, auditService)
	contactUsecase := usecase.NewContactUsecase(data, log, auditService)
	galleryUsecase := usecase.NewGalleryUsecase(data, log, auditService)
	documentUsecase := usecase.NewDocumentUsecase(data, log, auditService)
	searchUsecase := usecase.NewSearchUsecase(data, log)
	uploadUsecase := usecase.NewUploadUsecase(log, cfg.Upload, cfg.App.APIBaseURL, auditService)

	// Initialize router
	router := deliveryHttp.NewRouter(deliveryHttp.RouterConfig{
		UploadDir:         cfg.Upload.Dir,
		PracticeHandler:   handler.NewPracticeHandler(practiceUsecase, customValidator),
		ServiceHandler:    handler.NewServiceHandler(serviceUsecase, customValidator),
		TeamHandler:       handler.NewTeamHandler(teamUsecase, customValidator),
		BlogHandler:       handler.NewBlogHandler(blogUsecase, customValidator),
		ContactHandler:    handler.NewContactHandler(contactUsecase, customValidator),
		GalleryHandler:    handler.NewGalleryHandler(galleryUsecase, customValidator),
		SearchHandler:     handler.NewSearchHandler(searchUsecase),
		UploadHandler:     handler.NewUploadHandler(uploadUsecase, cfg.Upload.MaxSize),
		AuthHandler:       handler.NewAuthHandler(authUsecase, customValidator),
		DocumentHandler:   handler.NewDocumentHandler(documentUsecase),
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtService, sessions),
		CORSMiddleware:    middleware.NewCORSMiddleware(cfg.App.FrontendURL),
		LoggingMiddleware: middleware.NewLoggingMiddleware(log),
	})

	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
