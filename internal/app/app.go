package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/riquelima/SandyPetShop-v3/internal/access"
	"github.com/riquelima/SandyPetShop-v3/internal/config"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/handler"
	"github.com/riquelima/SandyPetShop-v3/internal/metrics"
	"github.com/riquelima/SandyPetShop-v3/internal/middleware"
	"github.com/riquelima/SandyPetShop-v3/internal/notification"
	"github.com/riquelima/SandyPetShop-v3/internal/repository"
	"github.com/riquelima/SandyPetShop-v3/internal/router"
	"github.com/riquelima/SandyPetShop-v3/internal/scheduler"
	"github.com/riquelima/SandyPetShop-v3/internal/service"
	"github.com/riquelima/SandyPetShop-v3/internal/service/ports"
	"github.com/riquelima/SandyPetShop-v3/internal/slotindex"
	"github.com/riquelima/SandyPetShop-v3/internal/validator"
	"github.com/riquelima/SandyPetShop-v3/internal/workflow"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const startupTimeout = 30 * time.Second

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	engine     *service.SchedulingEngine
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = Migrate(cfg); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	app.log.Info("migrations applied successfully")

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

func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"PetCare",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// Migrate applies the schema with a short-lived connection.
func Migrate(cfg *config.Config) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	return repository.Migrate(db)
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

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
	if !a.cfg.Redis.Enabled() {
		if a.cfg.SlotIndex.Driver == "redis" {
			return errors.New("slot index driver is redis but redis.addr is empty")
		}
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.Redis.Addr,
		Password:     a.cfg.Redis.Password,
		DB:           a.cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Int("db", a.cfg.Redis.DB),
	)
	return nil
}

func (a *App) slotIndex() ports.SlotIndex {
	if a.cfg.SlotIndex.Driver == "redis" {
		return slotindex.NewRedis(a.redis, a.cfg.Redis.KeyPrefix)
	}
	return slotindex.NewMemory()
}

func (a *App) initServices() error {
	cal, err := a.cfg.Calendar.Build()
	if err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	capacity, err := a.cfg.Capacity.Build()
	if err != nil {
		return fmt.Errorf("capacity: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	// A nil client keeps the notifier in log-only mode.
	var publisher redis.UniversalClient
	if a.redis != nil {
		publisher = a.redis
	}
	notifier := notification.NewRedisNotifier(publisher, a.cfg.Redis.Channel, a.log)

	repo := repository.NewReservationRepo(a.db)
	index := a.slotIndex()

	a.engine = service.NewSchedulingEngine(
		repo,
		index,
		validator.New(cal, capacity, index),
		cal,
		capacity,
		notifier,
		recorder,
		a.log,
	)

	drafts := workflow.NewManager(a.engine, cal, a.cfg.Workflow.DraftTTL, a.log)
	admin := access.NewAdminService(access.NewGate(a.log), a.engine, domain.Role(a.cfg.Auth.AdminRole))

	a.scheduler = scheduler.New(
		drafts,
		a.engine,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	var metricsHandler http.Handler
	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	}
	if a.cfg.Metrics.Enabled {
		metricsHandler = recorder.Handler()
		mw = append(mw, recorder.Middleware())
	}
	mw = append(mw, middleware.Identity([]byte(a.cfg.Auth.JWTSecret), a.log))

	h := handler.NewHandler(a.engine, drafts, admin, cal)
	r := router.InitRouter(a.cfg.Gin.Mode, h, metricsHandler, mw...)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// RebuildOccupancy reloads the slot index from the reservation log.
func (a *App) RebuildOccupancy(ctx context.Context) (int, error) {
	n, err := a.engine.RebuildOccupancy(ctx)
	if err != nil {
		return 0, fmt.Errorf("rebuild occupancy: %w", err)
	}
	return n, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	_, err := a.RebuildOccupancy(startCtx)
	cancel()
	if err != nil {
		_ = a.Close()
		return err
	}

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

	if err := a.Close(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// Close releases the database and redis connections.
func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	return nil
}
