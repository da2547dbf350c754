package repository

import (
	"context"
	"errors"

	"github.com/time-manager-api/internal/domain"
	"gorm.io/gorm"
)

// TimeEntryRepository определяет интерфейс для работы с записями времени
type TimeEntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	List(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
	Update(ctx context.Context, entry *domain.TimeEntry) error
	Delete(ctx context.Context, id int64) error
}

type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository создаёт новый экземпляр репозитория
func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	return translateTimeEntryError(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, translateNotFound(err, domain.ErrTimeEntryNotFound)
	}
	return &entry, nil
}

// List возвращает записи от новых к старым: work_date, затем id по убыванию
func (r *timeEntryRepository) List(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.TimeEntry{}).
		Select("time_entries.*")

	if filter.ProjectID != nil {
		query = query.Where("time_entries.project_id = ?", *filter.ProjectID)
	}
	if filter.CustomerID != nil {
		query = query.
			Joins("JOIN projects ON projects.id = time_entries.project_id").
			Where("projects.customer_id = ?", *filter.CustomerID)
	}
	if filter.Billable != nil {
		query = query.Where("time_entries.billable = ?", *filter.Billable)
	}
	query = whereWorkDate(query, filter.Dates)

	entries := make([]domain.TimeEntry, 0)
	err := paginate(query.Order("time_entries.work_date DESC").Order("time_entries.id DESC"), filter.Page).
		Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	return translateTimeEntryError(r.db.WithContext(ctx).Save(entry).Error)
}

func (r *timeEntryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.TimeEntry{}, id, domain.ErrTimeEntryNotFound)
}

// whereWorkDate ограничивает time_entries.work_date включительным диапазоном
func whereWorkDate(query *gorm.DB, dates domain.DateRange) *gorm.DB {
	if dates.From != nil {
		query = query.Where("time_entries.work_date >= ?", *dates.From)
	}
	if dates.To != nil {
		query = query.Where("time_entries.work_date <= ?", *dates.To)
	}
	return query
}

func translateTimeEntryError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrProjectReference
	}
	return err
}
