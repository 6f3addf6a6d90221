package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/courseforge/course-market/internal/api"
	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/infrastructure/config"
	mongodb "github.com/courseforge/course-market/internal/infrastructure/db/mongo"
	redisdb "github.com/courseforge/course-market/internal/infrastructure/db/redis"
	"github.com/courseforge/course-market/internal/infrastructure/queue"
	"github.com/courseforge/course-market/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates the unique email index per principal kind and
// the secondary indexes on courses and purchases. The unique indexes
// are what enforce the email-uniqueness invariant; the service layer
// only translates the duplicate-key error.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, kind := range []domain.Kind{domain.KindLearner, domain.KindInstructor} {
		if err := mongodb.NewPrincipalRepository(db, kind).EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	if err := mongodb.NewCourseRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewPurchaseRepository(db).EnsureIndexes(ctx)
}
