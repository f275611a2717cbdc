package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fuadinadhif/staysane-sub002/internal/cache"
	"github.com/fuadinadhif/staysane-sub002/internal/config"
	"github.com/fuadinadhif/staysane-sub002/internal/handler"
	"github.com/fuadinadhif/staysane-sub002/internal/middleware"
	"github.com/fuadinadhif/staysane-sub002/internal/notification"
	"github.com/fuadinadhif/staysane-sub002/internal/repository"
	"github.com/fuadinadhif/staysane-sub002/internal/router"
	"github.com/fuadinadhif/staysane-sub002/internal/scheduler"
	"github.com/fuadinadhif/staysane-sub002/internal/service"
	"github.com/fuadinadhif/staysane-sub002/internal/upload"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	timers     *scheduler.Timers
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"staysane",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return nil
}

func (a *App) initServices() error {
	roomRepo := repository.NewRoomRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	calendarRepo := repository.NewCalendarRepo(a.db)
	adjustmentRepo := repository.NewAdjustmentRepo(a.db)
	proofRepo := repository.NewProofRepo(a.db)
	tokenRepo := repository.NewTokenRepo(a.db)

	notifier, err := notification.NewEmailNotifier(
		a.cfg.SMTP.Host,
		a.cfg.SMTP.Port,
		a.cfg.SMTP.Username,
		a.cfg.SMTP.Password,
		a.cfg.SMTP.From,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	uploader := upload.NewCloudinaryUploader(
		a.cfg.Cloudinary.CloudName,
		a.cfg.Cloudinary.APIKey,
		a.cfg.Cloudinary.APISecret,
		a.cfg.Cloudinary.Folder,
		a.log,
	)

	availabilityCache := cache.NewAvailabilityCache(a.redis, a.cfg.Redis.CacheTTL)
	a.timers = scheduler.NewTimers(context.Background(), a.log)

	userService := service.NewUserService(userRepo)
	roomService := service.NewRoomService(roomRepo, userRepo)
	pricingService := service.NewPricingService(roomRepo, adjustmentRepo)
	availabilityService := service.NewAvailabilityService(calendarRepo, roomRepo, availabilityCache, a.log)
	bookingService := service.NewBookingService(
		bookingRepo,
		roomRepo,
		userRepo,
		pricingService,
		availabilityCache,
		a.timers,
		notifier,
		a.log,
		a.cfg.Booking.PaymentTTL,
	)
	proofService := service.NewProofService(
		proofRepo,
		bookingRepo,
		roomRepo,
		userRepo,
		uploader,
		availabilityCache,
		a.timers,
		notifier,
		a.log,
		a.cfg.Booking.PaymentTTL,
		a.cfg.Booking.RejectGrace,
	)
	tokenService := service.NewTokenService(tokenRepo, userRepo, a.timers, a.log, a.cfg.Token.TTL)

	a.scheduler = scheduler.New(
		bookingService,
		tokenService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		userService,
		roomService,
		availabilityService,
		pricingService,
		bookingService,
		proofService,
		tokenService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Identity(userRepo),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.timers.Stop()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "expiry timers disarmed")

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
