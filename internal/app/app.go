package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/canvas-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/canvas-backend/internal/adapter/postgres/audit"
	topicrepo "github.com/heartmarshall/canvas-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/canvas-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/canvas-backend/internal/auth"
	"github.com/heartmarshall/canvas-backend/internal/config"
	"github.com/heartmarshall/canvas-backend/internal/i18n"
	authsvc "github.com/heartmarshall/canvas-backend/internal/service/auth"
	"github.com/heartmarshall/canvas-backend/internal/service/topic"
	"github.com/heartmarshall/canvas-backend/internal/service/upsert"
	"github.com/heartmarshall/canvas-backend/internal/service/user"
	"github.com/heartmarshall/canvas-backend/internal/transport/middleware"
	"github.com/heartmarshall/canvas-backend/internal/transport/rest"
)

// Run is the application entry point. It wires repositories, services and
// handlers against cfg and serves HTTP until ctx is cancelled or a
// termination signal arrives. In-flight requests are given
// cfg.Server.ShutdownTimeout to finish once shutdown begins.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var poolOpts []postgres.PoolOption
	if cfg.Database.LogQueries {
		poolOpts = append(poolOpts, postgres.WithQueryLog(logger))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, poolOpts...)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	catalog, err := i18n.New(cfg.I18n.FallbackLocale)
	if err != nil {
		return fmt.Errorf("app: load catalog: %w", err)
	}

	topics := topicrepo.New(pool)
	users := userrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool, postgres.WithRetry(cfg.Database.TxAttempts))
	validator := upsert.NewValidator(catalog)
	hasher := auth.NewBcryptHasher(cfg.Security.PasswordHashCost)

	topicSvc := topic.NewService(logger, topics, users, validator, catalog.Fallback(), audit, tx)
	userSvc := user.NewService(logger, users, validator, catalog, hasher, audit, tx)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authSvc := authsvc.NewService(logger, users, hasher, jwt, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(logger, Handlers{
		Health: rest.NewHealthHandler(pool, catalog, BuildVersion()),
		Topic:  rest.NewTopicHandler(topicSvc, logger),
		User:   rest.NewUserHandler(userSvc, logger),
		Locale: rest.NewLocaleHandler(catalog),
		Auth:   rest.NewAuthHandler(authSvc, logger),
	}, Guards{
		Tokens:  jwt,
		Limiter: limiter,
		CORS:    cfg.CORS,
		Writes:  cfg.RateLimit.WritesPerMinute,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
			return srv.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
