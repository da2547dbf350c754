package service

import (
	"context"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/repository"
)

// ReportService строит сводки отработанных часов
type ReportService interface {
	ByProject(ctx context.Context, filter domain.ReportFilter) ([]domain.ProjectHours, error)
	ByCustomer(ctx context.Context, filter domain.ReportFilter) ([]domain.CustomerHours, error)
}

type reportService struct {
	store repository.Store
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(store repository.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) ByProject(ctx context.Context, filter domain.ReportFilter) ([]domain.ProjectHours, error) {
	if !filter.Dates.Valid() {
		return nil, domain.ErrInvalidDateRange
	}
	return s.store.Reports().HoursByProject(ctx, filter)
}

func (s *reportService) ByCustomer(ctx context.Context, filter domain.ReportFilter) ([]domain.CustomerHours, error) {
	if !filter.Dates.Valid() {
		return nil, domain.ErrInvalidDateRange
	}
	return s.store.Reports().HoursByCustomer(ctx, filter)
}
