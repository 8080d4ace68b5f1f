package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fabrica/realestate-crm/internal/api/handler"
	"github.com/fabrica/realestate-crm/internal/api/middleware"
	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
	"github.com/fabrica/realestate-crm/internal/core/service"
	"github.com/fabrica/realestate-crm/internal/infrastructure/config"
	"github.com/fabrica/realestate-crm/internal/infrastructure/store"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is injected from main because its worker pool is
// started and stopped with the process lifecycle.
func NewRouter(
	st *store.Store,
	recorder ports.ActivityRecorder,
	activity ports.ActivityService,
	cfg *config.Config,
	log zerolog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	userRepo := store.NewUserRepository(st)
	propertyRepo := store.NewPropertyRepository(st)
	roleRepo := store.NewRoleRepository(st)
	settingsRepo := store.NewSettingsRepository(st)

	authService := service.NewAuthService(userRepo, settingsRepo)
	propertyService := service.NewPropertyService(propertyRepo, recorder, log)
	roleService := service.NewRoleService(roleRepo)
	uploadService, err := service.NewUploadService(cfg.UploadDir, log)
	if err != nil {
		return nil, err
	}

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	roleHandler := handler.NewRoleHandler(roleService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	activityHandler := handler.NewActivityHandler(activity)

	authMW := middleware.Auth(settingsRepo)
	manageRolesMW := middleware.RequirePermission(roleRepo, domain.PermManageRoles)

	// --- Public endpoints ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the CRM API")
	})

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(settingsRepo, cfg.UploadDir)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – can the store serve requests?

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Property routes: reads are public, mutations need a token ---
	e.GET("/api/properties", propertyHandler.List)
	e.GET("/api/properties/:id", propertyHandler.Get)
	e.POST("/api/properties", propertyHandler.Create, authMW)
	e.PUT("/api/properties/:id", propertyHandler.Update, authMW)
	e.DELETE("/api/properties/:id", propertyHandler.Delete, authMW)

	// --- Role routes: all authenticated, mutations need roles:manage ---
	roles := e.Group("/api/roles", authMW)
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.Get)
	roles.POST("", roleHandler.Create, manageRolesMW)
	roles.PUT("/:id", roleHandler.Update, manageRolesMW)
	roles.DELETE("/:id", roleHandler.Delete, manageRolesMW)

	// --- Profile routes ---
	e.GET("/api/users/me", authHandler.Me, authMW)
	e.PUT("/api/users/me", authHandler.UpdateMe, authMW)

	// --- Activity feed ---
	e.GET("/api/activity", activityHandler.Recent, authMW)

	// --- Upload: size cap enforced before the handler runs ---
	e.POST("/api/upload", uploadHandler.Upload, authMW,
		echomiddleware.BodyLimit(fmt.Sprintf("%dB", cfg.UploadMaxBytes)))

	// --- Uploaded assets served back by category ---
	e.Static("/images", filepath.Join(cfg.UploadDir, "images"))
	e.Static("/videos", filepath.Join(cfg.UploadDir, "videos"))
	e.Static("/files", filepath.Join(cfg.UploadDir, "files"))

	return e, nil
}
