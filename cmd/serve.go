package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"breachwatch/internal/api"
	"breachwatch/internal/api/handler"
	"breachwatch/internal/auth"
	"breachwatch/internal/config"
	"breachwatch/internal/monitor"
	"breachwatch/internal/worker"
	"breachwatch/pkg/breachsource/hibp"
	"breachwatch/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(_ *cobra.Command, _ []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
			authSvc := auth.New(strg, tokens)

			source := hibp.New(&http.Client{Timeout: cfg.BreachSource.Timeout},
				cfg.BreachSource.BaseURL,
				cfg.BreachSource.APIKey)
			mon := monitor.New(strg, source)

			riverClient, err := worker.Start(ctx, strg.Pool, strg, mon, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: handler.Deps{Auth: authSvc, Monitor: mon},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
