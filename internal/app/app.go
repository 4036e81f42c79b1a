package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fpempleo_backend/database"
	"fpempleo_backend/internal/auth"
	"fpempleo_backend/internal/config"
	"fpempleo_backend/internal/email"
	"fpempleo_backend/internal/handlers"
	"fpempleo_backend/internal/logger"
	"fpempleo_backend/internal/middleware"
	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/internal/routes"
	"fpempleo_backend/internal/services"
	"fpempleo_backend/internal/validator"
	"fpempleo_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type App struct {
	cfg    *config.Config
	db     *gorm.DB
	router *gin.Engine
	worker *workers.MaintenanceWorker
}

func New() (*App, error) {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	a := &App{cfg: cfg, db: db}
	if err := a.wire(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) wire() error {
	userRepo := repositories.NewUserRepository(a.db)
	jobRepo := repositories.NewJobRepository(a.db)
	appRepo := repositories.NewApplicationRepository(a.db)
	taxonomyRepo := repositories.NewTaxonomyRepository(a.db)
	settingsRepo := repositories.NewSettingsRepository(a.db)

	emailProvider, err := email.NewSMTPProvider(a.cfg, settingsRepo)
	if err != nil {
		return fmt.Errorf("init email provider: %w", err)
	}

	authService := services.NewAuthService(userRepo, emailProvider)
	profileService := services.NewProfileService(userRepo)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, emailProvider)
	accountService := services.NewAccountService(userRepo)
	taxonomyService := services.NewTaxonomyService(taxonomyRepo)
	adminService := services.NewAdminService(userRepo, jobRepo, appRepo, settingsRepo)

	v := validator.New()
	base := handlers.NewBaseHandler(v)
	appHandlers := &handlers.AppHandlers{
		Auth:        handlers.NewAuthHandler(base, authService),
		Profile:     handlers.NewProfileHandler(base, profileService, accountService),
		Job:         handlers.NewJobHandler(base, jobService),
		Application: handlers.NewApplicationHandler(base, applicationService),
		Taxonomy:    handlers.NewTaxonomyHandler(base, taxonomyService),
		Admin:       handlers.NewAdminHandler(base, adminService, accountService, taxonomyService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	routes.Register(router, appHandlers)
	a.router = router

	a.worker = workers.NewMaintenanceWorker(userRepo, jobRepo, emailProvider, workers.MaintenanceConfig{
		Warmup:          time.Duration(a.cfg.Scheduler.WarmupSeconds) * time.Second,
		Interval:        time.Duration(a.cfg.Scheduler.IntervalHours) * time.Hour,
		CVStaleAfter:    time.Duration(a.cfg.Scheduler.CVStaleDays) * 24 * time.Hour,
		ExpiryWarnAhead: time.Duration(a.cfg.Scheduler.ExpiryWarnDays) * 24 * time.Hour,
	})

	if err := a.seedFirstAdmin(userRepo); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

// seedFirstAdmin creates the configured administrator account on first
// boot. Existing accounts are left untouched.
func (a *App) seedFirstAdmin(userRepo repositories.UserRepository) error {
	if a.cfg.Admin.Email == "" || a.cfg.Admin.Password == "" {
		return nil
	}

	_, err := userRepo.FindByEmail(a.cfg.Admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(a.cfg.Admin.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &models.User{
		Email:           a.cfg.Admin.Email,
		PasswordHash:    hash,
		Role:            models.UserRoleAdmin,
		Status:          models.UserStatusActive,
		IsVerified:      true,
		ConsentAccepted: true,
		ConsentAt:       &now,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("seeded initial admin account", "email", a.cfg.Admin.Email)
	return nil
}

// Run starts the HTTP server and the maintenance worker, and shuts both
// down cleanly on SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.worker.Start(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// Router exposes the configured engine for tests.
func (a *App) Router() *gin.Engine {
	return a.router
}
