package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/time-manager-api/internal/database"
	"github.com/time-manager-api/internal/handler"
	"github.com/time-manager-api/internal/service"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			return a.serve(ctx)
		},
	}
}

// newHTTPHandler собирает сервисы, хендлеры и роутер поверх хранилища
func (a *app) newHTTPHandler(registry *prometheus.Registry) http.Handler {
	handlers := handler.Handlers{
		Customers:   handler.NewCustomerHandler(service.NewCustomerService(a.store), a.logger),
		Departments: handler.NewDepartmentHandler(service.NewDepartmentService(a.store), a.logger),
		Projects:    handler.NewProjectHandler(service.NewProjectService(a.store), a.logger),
		TimeEntries: handler.NewTimeEntryHandler(service.NewTimeEntryService(a.store), a.logger),
		Reports:     handler.NewReportHandler(service.NewReportService(a.store), a.logger),
	}

	health := func(ctx context.Context) error {
		return database.Ping(ctx, a.db)
	}

	return handler.NewRouter(handlers, health, registry, a.logger).Setup()
}

func (a *app) serve(ctx context.Context) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if sqlDB, err := a.db.DB(); err == nil {
		registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, a.cfg.Database.Driver))
	}

	server := &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      a.newHTTPHandler(registry),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server is starting", slog.String("port", a.cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("could not listen on port", slog.String("port", a.cfg.Server.Port), slog.Any("error", err))
			return err
		}
	case <-ctx.Done():
	}

	a.logger.Info("server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		return err
	}

	a.logger.Info("server stopped")
	return nil
}
