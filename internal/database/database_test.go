package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/time-manager-api/internal/config"
	"github.com/time-manager-api/internal/database"
	"github.com/time-manager-api/internal/database/dbtest"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrate_Idempotent(t *testing.T) {
	db := dbtest.NewSQLite(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(sqlDB, config.DriverSQLite))

	for _, table := range []string{"customers", "departments", "projects", "time_entries"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db := dbtest.NewSQLite(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	assert.Error(t, database.Migrate(sqlDB, "oracle"))
}

func TestSchema_ForeignKeyActions(t *testing.T) {
	db := dbtest.NewSQLite(t)

	exec := func(query string, args ...any) error {
		return db.Exec(query, args...).Error
	}
	count := func(table string) int64 {
		var n int64
		require.NoError(t, db.Table(table).Count(&n).Error)
		return n
	}

	require.NoError(t, exec(`INSERT INTO customers (id, name, active) VALUES (1, 'Acme', 1)`))
	require.NoError(t, exec(`INSERT INTO departments (id, name, customer_id) VALUES (1, 'R&D', 1)`))
	require.NoError(t, exec(`INSERT INTO projects (id, name, customer_id, department_id, active) VALUES (1, 'Portal', 1, 1, 1)`))
	require.NoError(t, exec(`INSERT INTO time_entries (project_id, work_date, hours, billable) VALUES (1, '2024-01-01', 2, 1)`))

	// RESTRICT: заказчика с проектами удалить нельзя
	assert.Error(t, exec(`DELETE FROM customers WHERE id = 1`))
	assert.Equal(t, int64(1), count("departments"))

	// SET NULL: проект отвязывается от удалённого подразделения
	require.NoError(t, exec(`DELETE FROM departments WHERE id = 1`))
	var project struct{ DepartmentID *int64 }
	require.NoError(t, db.Raw(`SELECT department_id FROM projects WHERE id = 1`).Scan(&project).Error)
	assert.Nil(t, project.DepartmentID)

	// CASCADE: записи времени удаляются вместе с проектом
	require.NoError(t, exec(`DELETE FROM projects WHERE id = 1`))
	assert.Equal(t, int64(0), count("time_entries"))

	// CASCADE: подразделения удаляются вместе с заказчиком
	require.NoError(t, exec(`INSERT INTO departments (name, customer_id) VALUES ('Ops', 1)`))
	require.NoError(t, exec(`DELETE FROM customers WHERE id = 1`))
	assert.Equal(t, int64(0), count("departments"))

	assert.Error(t, exec(`INSERT INTO departments (name, customer_id) VALUES ('Orphan', 42)`))
	assert.Error(t, exec(`INSERT INTO customers (name, active) VALUES ('Dup', 1), ('Dup', 1)`))
}

func TestConnect_SQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "connect.db"),
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}

	db, err := database.Connect(context.Background(), cfg, gormlogger.Silent, 1)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, database.Ping(context.Background(), db))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(config.DatabaseConfig{Driver: "mysql"}, gormlogger.Silent)
	assert.Error(t, err)
}
