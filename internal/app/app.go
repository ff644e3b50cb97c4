package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Raimguhinov/alarmlog/internal/alarm"
	"github.com/Raimguhinov/alarmlog/internal/config"
	"github.com/Raimguhinov/alarmlog/internal/session"
	"github.com/Raimguhinov/alarmlog/internal/storage"
	"github.com/Raimguhinov/alarmlog/internal/user"
	"github.com/Raimguhinov/alarmlog/pkg/httpserver"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/Raimguhinov/alarmlog/pkg/postgres"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	l := logger.New(cfg.Log.Level, cfg.App.Env)
	l.Info("starting",
		slog.String("name", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repository
	store, err := storage.NewFromURL(ctx, cfg.PG.URL, l, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - storage.NewFromURL: %w", err)
	}
	defer store.Close()

	sessions, err := session.NewFromURL(ctx, cfg.Session.URL, cfg.Session.TTL)
	if err != nil {
		return fmt.Errorf("app - Run - session.NewFromURL: %w", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			l.Error("app - Run - sessions.Close", logger.Err(err))
		}
	}()

	// Use cases
	alarms := alarm.New(store.Alarms, l)
	users := user.New(store.Users, l)
	if err = users.EnsureAdmin(ctx, cfg.App.AdminName, cfg.App.AdminPassword); err != nil {
		return fmt.Errorf("app - Run - users.EnsureAdmin: %w", err)
	}

	// HTTP Server
	httpServer := httpserver.New(
		SetupRouter(l, cfg, alarms, users, sessions),
		httpserver.Addr(cfg.HTTP.IP, cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.Timeout),
		httpserver.WriteTimeout(cfg.HTTP.Timeout),
		httpserver.IdleTimeout(cfg.HTTP.IdleTimout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)
	l.Info("http server started", slog.String("addr", httpServer.Addr()))

	// Waiting signal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case err := <-httpServer.Notify():
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("app - Run - httpServer.Notify: %w", err)
		case <-gctx.Done():
			return nil
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		l.Info("app - Run - shutting down")

		// Shutdown
		if err := httpServer.Shutdown(); err != nil {
			return fmt.Errorf("app - Run - httpServer.Shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
