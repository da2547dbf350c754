package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/time-manager-api/internal/database/dbtest"
	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/repository"
)

func seedReport(t *testing.T) repository.Store {
	t.Helper()
	store := repository.NewStore(dbtest.NewSQLite(t))
	ctx := context.Background()

	acme := &domain.Customer{Name: "Acme", Active: true}
	require.NoError(t, store.Customers().Create(ctx, acme))
	globex := &domain.Customer{Name: "Globex", Active: true}
	require.NoError(t, store.Customers().Create(ctx, globex))

	portal := &domain.Project{Name: "Portal", CustomerID: acme.ID, Active: true}
	require.NoError(t, store.Projects().Create(ctx, portal))
	billing := &domain.Project{Name: "Billing", CustomerID: globex.ID, Active: true}
	require.NoError(t, store.Projects().Create(ctx, billing))

	for _, e := range []domain.TimeEntry{
		{ProjectID: portal.ID, WorkDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Hours: 2, Billable: true},
		{ProjectID: portal.ID, WorkDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), Hours: 3, Billable: false},
		{ProjectID: billing.ID, WorkDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Hours: 4, Billable: true},
	} {
		require.NoError(t, store.TimeEntries().Create(ctx, &e))
	}

	return store
}

func TestRunReport_ByProject(t *testing.T) {
	store := seedReport(t)

	var out bytes.Buffer
	require.NoError(t, runReport(context.Background(), store, &out, reportByProject, domain.ReportFilter{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"PROJECT", "ID", "PROJECT", "CUSTOMER", "HOURS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "Portal", "Acme", "5.00"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "Billing", "Globex", "4.00"}, strings.Fields(lines[2]))
}

func TestRunReport_ByCustomerFiltered(t *testing.T) {
	store := seedReport(t)

	filter, err := reportOptions{by: reportByCustomer, to: "2024-01-31"}.filter()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runReport(context.Background(), store, &out, reportByCustomer, filter))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"2", "Globex", "4.00"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "Acme", "2.00"}, strings.Fields(lines[2]))
}

func TestReportOptions_Filter(t *testing.T) {
	billable := true

	filter, err := reportOptions{by: reportByProject, from: "2024-01-01", billable: &billable}.filter()
	require.NoError(t, err)
	require.NotNil(t, filter.Dates.From)
	assert.Nil(t, filter.Dates.To)
	assert.Equal(t, &billable, filter.Billable)

	_, err = reportOptions{by: "team"}.filter()
	assert.Error(t, err)

	_, err = reportOptions{by: reportByProject, to: "31.01.2024"}.filter()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRunReport_InvalidRange(t *testing.T) {
	store := seedReport(t)

	filter, err := reportOptions{by: reportByProject, from: "2024-02-01", to: "2024-01-01"}.filter()
	require.NoError(t, err)

	err = runReport(context.Background(), store, &bytes.Buffer{}, reportByProject, filter)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestReportCommand_SQLite(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("LOG_LEVEL", "error")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"report", "--by", "customer", "--billable=false"})

	require.NoError(t, root.Execute())
	assert.Equal(t, []string{"CUSTOMER", "ID", "CUSTOMER", "HOURS"}, strings.Fields(out.String()))
}
