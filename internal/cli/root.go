// Package cli содержит команды исполняемого файла: HTTP сервер и отчёты.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/time-manager-api/internal/config"
	"github.com/time-manager-api/internal/database"
	"github.com/time-manager-api/internal/repository"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// connectAttempts - сколько раз ждать БД при старте (по секунде)
const connectAttempts = 30

// NewRootCommand собирает дерево команд. Без подкоманды запускается сервер.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "api",
		Short: "Time tracking API",
		Long: `api serves the time tracking HTTP API: customers, departments,
projects, time entries and hour reports.`,
		SilenceUsage: true,
	}

	serve := newServeCommand()
	root.RunE = serve.RunE

	root.AddCommand(serve)
	root.AddCommand(newReportCommand())

	return root
}

// Execute запускает корневую команду
func Execute() error {
	return NewRootCommand().Execute()
}

// app - общие зависимости команд
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
	store  repository.Store
}

// bootstrap загружает конфигурацию, подключается к БД и применяет миграции
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	db, err := database.Connect(ctx, cfg.Database, gormlogger.Warn, connectAttempts)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if err := database.Migrate(sqlDB, cfg.Database.Driver); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		store:  repository.NewStore(db),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
