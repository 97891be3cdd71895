package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	adminhandler "github.com/aliskhannn/newsletter/internal/api/handlers/admin"
	authhandler "github.com/aliskhannn/newsletter/internal/api/handlers/auth"
	subshandler "github.com/aliskhannn/newsletter/internal/api/handlers/subscription"
	"github.com/aliskhannn/newsletter/internal/api/router"
	"github.com/aliskhannn/newsletter/internal/api/server"
	"github.com/aliskhannn/newsletter/internal/auth"
	"github.com/aliskhannn/newsletter/internal/config"
	idemrepo "github.com/aliskhannn/newsletter/internal/repository/idempotency"
	newsrepo "github.com/aliskhannn/newsletter/internal/repository/newsletter"
	subsrepo "github.com/aliskhannn/newsletter/internal/repository/subscription"
	userrepo "github.com/aliskhannn/newsletter/internal/repository/user"
	newssvc "github.com/aliskhannn/newsletter/internal/service/newsletter"
	subssvc "github.com/aliskhannn/newsletter/internal/service/subscription"
	"github.com/aliskhannn/newsletter/internal/session"
	"github.com/aliskhannn/newsletter/internal/worker"
	"github.com/aliskhannn/newsletter/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	subscriptions := subsrepo.NewRepository(db)
	newsletters := newsrepo.NewRepository(db)
	idempotency := idemrepo.NewRepository(db)
	users := userrepo.NewRepository(db)

	sessions := session.NewStore(rdb.Client, cfg.Session.TTL)

	subscriptionService := subssvc.NewService(subscriptions, emailClient, cfg.App.BaseURL, cfg.Retry)
	newsletterService := newssvc.NewService(newsletters, idempotency)
	authService := auth.NewService(users)

	subsHandler := subshandler.NewHandler(subscriptionService, val)
	authHandler := authhandler.NewHandler(authService, sessions, val)
	admHandler := adminhandler.NewHandler(newsletterService, authService, users, val)

	deliverer := worker.NewDeliverer(
		newsletters,
		emailClient,
		val,
		cfg.Worker.EmptyQueueBackoff,
		cfg.Worker.ErrorBackoff,
	)

	go deliverer.Run(ctx, cfg.Worker.Count)

	r := router.New(subsHandler, authHandler, admHandler, sessions)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis client")
	}
}
