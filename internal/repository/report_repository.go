package repository

import (
	"context"

	"github.com/time-manager-api/internal/domain"
	"gorm.io/gorm"
)

// ReportRepository строит сводки часов по записям времени
type ReportRepository interface {
	HoursByProject(ctx context.Context, filter domain.ReportFilter) ([]domain.ProjectHours, error)
	HoursByCustomer(ctx context.Context, filter domain.ReportFilter) ([]domain.CustomerHours, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository создаёт новый экземпляр репозитория
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

type projectHoursRow struct {
	ProjectID    int64
	ProjectName  string
	CustomerID   int64
	CustomerName string
	Hours        *float64
}

type customerHoursRow struct {
	CustomerID   int64
	CustomerName string
	Hours        *float64
}

// HoursByProject суммирует часы по проектам. Проекты без записей
// в выбранном диапазоне в отчёт не попадают (внутреннее соединение).
func (r *reportRepository) HoursByProject(ctx context.Context, filter domain.ReportFilter) ([]domain.ProjectHours, error) {
	query := r.db.WithContext(ctx).
		Table("time_entries").
		Select("projects.id AS project_id, projects.name AS project_name, " +
			"customers.id AS customer_id, customers.name AS customer_name, " +
			"COALESCE(SUM(time_entries.hours), 0) AS hours").
		Joins("JOIN projects ON projects.id = time_entries.project_id").
		Joins("JOIN customers ON customers.id = projects.customer_id")
	query = whereReport(query, filter).
		Group("projects.id, projects.name, customers.id, customers.name").
		Order("hours DESC")

	var rows []projectHoursRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]domain.ProjectHours, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.ProjectHours{
			ProjectID:    row.ProjectID,
			ProjectName:  row.ProjectName,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Hours:        hoursOrZero(row.Hours),
		})
	}
	return result, nil
}

// HoursByCustomer суммирует часы по заказчикам через все их проекты
func (r *reportRepository) HoursByCustomer(ctx context.Context, filter domain.ReportFilter) ([]domain.CustomerHours, error) {
	query := r.db.WithContext(ctx).
		Table("time_entries").
		Select("customers.id AS customer_id, customers.name AS customer_name, " +
			"COALESCE(SUM(time_entries.hours), 0) AS hours").
		Joins("JOIN projects ON projects.id = time_entries.project_id").
		Joins("JOIN customers ON customers.id = projects.customer_id")
	query = whereReport(query, filter).
		Group("customers.id, customers.name").
		Order("hours DESC")

	var rows []customerHoursRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]domain.CustomerHours, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.CustomerHours{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Hours:        hoursOrZero(row.Hours),
		})
	}
	return result, nil
}

func whereReport(query *gorm.DB, filter domain.ReportFilter) *gorm.DB {
	query = whereWorkDate(query, filter.Dates)
	if filter.Billable != nil {
		query = query.Where("time_entries.billable = ?", *filter.Billable)
	}
	return query
}

// hoursOrZero возвращает 0 для пустой суммы
func hoursOrZero(hours *float64) float64 {
	if hours == nil {
		return 0
	}
	return *hours
}
