package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/derin/uniportal/internal/app/controllers"
	appRoutes "github.com/derin/uniportal/internal/app/routes"
	appStore "github.com/derin/uniportal/internal/app/store"
	"github.com/derin/uniportal/internal/config"
	appMiddleware "github.com/derin/uniportal/internal/middleware"
	"github.com/derin/uniportal/internal/pkg/logger"
	"github.com/derin/uniportal/internal/pkg/notify"
	"github.com/derin/uniportal/internal/seed"
	"github.com/derin/uniportal/internal/storage"
	"github.com/derin/uniportal/internal/storage/filestore"
	"github.com/derin/uniportal/internal/storage/memstore"
	"github.com/derin/uniportal/internal/storage/pgstore"
	"github.com/derin/uniportal/internal/storage/redisstore"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SessionStore         *appStore.SessionStore
	CourseStore          *appStore.CourseStore
	Directory            *appStore.Directory
	Hub                  *notify.Hub
	AuthController       *appControllers.AuthController
	ProfileController    *appControllers.ProfileController
	CourseController     *appControllers.CourseController
	AssignmentController *appControllers.AssignmentController
	DirectoryController  *appControllers.DirectoryController
	NotifyHandler        *notify.Handler
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; the config falls back to defaults.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the key-value backend named by the configuration.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "file":
		lgr.Info().Str("dir", cfg.Storage.FileDir).Msg("Opening file storage")
		return filestore.New(cfg.Storage.FileDir)

	case "redis":
		lgr.Info().Str("addr", cfg.Storage.Redis.Addr).Msg("Connecting to redis storage")
		return redisstore.New(ctx, redisstore.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})

	case "postgres":
		lgr.Info().Str("host", cfg.Storage.Postgres.Host).Msg("Connecting to postgres storage")
		return pgstore.New(ctx, cfg.GetPostgresConnectionString())

	case "memory":
		lgr.Info().Msg("Using in-memory storage, state is lost on restart")
		return memstore.New(), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// BuildDependencies initializes stores, controllers and middleware.
func BuildDependencies(ctx context.Context, cfg *config.Config, st storage.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	appMiddleware.RegisterValidations()

	data := seed.Default()

	deps.Hub = notify.NewHub(lgr)
	go deps.Hub.Run()

	deps.SessionStore = appStore.NewSessionStore(ctx, st, data, cfg.Session.KeyPrefix, lgr)
	deps.CourseStore = appStore.NewCourseStore(ctx, st, data, deps.Hub, cfg.Session.KeyPrefix, lgr)
	deps.Directory = appStore.NewDirectory(data)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionStore)

	deps.AuthController = appControllers.NewAuthController(deps.SessionStore)
	deps.ProfileController = appControllers.NewProfileController(deps.SessionStore)
	deps.CourseController = appControllers.NewCourseController(deps.CourseStore, deps.SessionStore)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.CourseStore)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.Directory, deps.CourseStore)
	deps.NotifyHandler = notify.NewHandler(deps.Hub, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.CourseController,
		deps.AssignmentController,
		deps.DirectoryController,
		deps.NotifyHandler,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
