package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"rushvote/internal/config"
	transport "rushvote/internal/http"
	"rushvote/internal/repository"
	"rushvote/internal/roster"
	"rushvote/internal/service"
	"rushvote/pkg/cache"
	dbbuilder "rushvote/pkg/database"
	"rushvote/pkg/httpserver"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	httpServer *httpserver.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	if err := repository.CreateSchema(dbPool); err != nil {
		return nil, fmt.Errorf("schema init failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	quizRepo := repository.NewQuizRepository(dbPool)
	responseRepo := repository.NewResponseRepository(dbPool)

	submissionService := service.NewSubmissionService(quizRepo, responseRepo, logger)
	analyticsService := service.NewAnalyticsService(responseRepo, logger)
	quizService := service.NewQuizService(quizRepo, logger)

	rosterClient := roster.NewClient(cfg.RosterBaseURL, cfg.RosterAPIKey, cfg.RosterTable)

	router := transport.NewRouter(transport.RouterConfig{
		Submissions:   submissionService,
		Analytics:     analyticsService,
		Quizzes:       quizService,
		Roster:        rosterClient,
		Cache:         cacheClient,
		Logger:        logger,
		AdminUser:     cfg.AdminUser,
		AdminPassword: cfg.AdminPassword,
		RosterTTL:     cfg.RosterCacheTTL,
		CORSOrigins:   strings.Split(cfg.CORSOrigins, ","),
	})

	httpServer, err := httpserver.New(router,
		httpserver.WithPort(cfg.HTTPPort),
		httpserver.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		httpServer: httpServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.httpServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("http shutdown error", zap.Error(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")
	_ = a.logger.Sync()
	return nil
}
