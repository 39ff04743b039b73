package bootstrap

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appClients "github.com/jobhubs/backoffice/internal/app/clients/jobhubs"
	appControllers "github.com/jobhubs/backoffice/internal/app/controllers"
	appRoutes "github.com/jobhubs/backoffice/internal/app/routes"
	appServices "github.com/jobhubs/backoffice/internal/app/services"
	"github.com/jobhubs/backoffice/internal/config"
	appMiddleware "github.com/jobhubs/backoffice/internal/middleware"
	pkgAuth "github.com/jobhubs/backoffice/internal/pkg/auth"
	"github.com/jobhubs/backoffice/internal/pkg/filestorage"
	"github.com/jobhubs/backoffice/internal/pkg/helpers"
	"github.com/jobhubs/backoffice/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UpstreamClient *appClients.Client

	AuthService      *appServices.AuthService
	UserService      *appServices.UserService
	CategorieService *appServices.CategorieService
	PaysService      *appServices.PaysService
	CelluleService   *appServices.CelluleService
	ActiviteService  *appServices.ActiviteService

	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	CategorieController *appControllers.CategorieController
	PaysController      *appControllers.PaysController
	CelluleController   *appControllers.CelluleController
	ActiviteController  *appControllers.ActiviteController
	UploadController    *appControllers.UploadController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    filestorage.FileStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file, when present, seeds the environment overrides.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

// BuildDependencies initializes the upstream client, services, and
// controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	upstreamTimeout := helpers.ParseDuration(cfg.Upstream.Timeout, 30*time.Second)
	deps.UpstreamClient = appClients.NewClient(cfg.Upstream.APIBaseURL, upstreamTimeout, lgr)

	usersClient := appClients.NewUsersClient(deps.UpstreamClient)
	categoriesClient := appClients.NewCategoriesClient(deps.UpstreamClient)
	paysClient := appClients.NewPaysClient(deps.UpstreamClient)
	cellulesClient := appClients.NewCellulesClient(deps.UpstreamClient)
	activitesClient := appClients.NewActivitesClient(deps.UpstreamClient)

	deps.FileStorage = filestorage.NewRemoteStorage(
		cfg.Upstream.UploadBaseURL,
		cfg.Upload.MaxSizeBytes,
		upstreamTimeout,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(cfg.Admin.Username, cfg.Admin.PasswordHash, deps.JWTService)
	deps.UserService = appServices.NewUserService(usersClient)
	deps.CategorieService = appServices.NewCategorieService(categoriesClient)
	deps.PaysService = appServices.NewPaysService(paysClient)
	deps.CelluleService = appServices.NewCelluleService(cellulesClient, usersClient)
	deps.ActiviteService = appServices.NewActiviteService(activitesClient)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CategorieController = appControllers.NewCategorieController(deps.CategorieService)
	deps.PaysController = appControllers.NewPaysController(deps.PaysService)
	deps.CelluleController = appControllers.NewCelluleController(deps.CelluleService)
	deps.ActiviteController = appControllers.NewActiviteController(deps.ActiviteService)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage)

	return deps
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
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CategorieController,
		deps.PaysController,
		deps.CelluleController,
		deps.ActiviteController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	return router
}
