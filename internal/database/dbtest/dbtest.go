// Package dbtest поднимает временную SQLite базу со схемой приложения для тестов.
package dbtest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/time-manager-api/internal/config"
	"github.com/time-manager-api/internal/database"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLite создаёт мигрированную БД во временном каталоге теста
func NewSQLite(tb testing.TB) *gorm.DB {
	tb.Helper()

	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      filepath.Join(tb.TempDir(), uuid.NewString()+".db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	db, err := database.Open(cfg, gormlogger.Silent)
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("get sql.DB: %v", err)
	}
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(sqlDB, config.DriverSQLite); err != nil {
		tb.Fatalf("migrate sqlite: %v", err)
	}

	return db
}
