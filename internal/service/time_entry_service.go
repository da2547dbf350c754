package service

import (
	"context"
	"fmt"
	"time"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/repository"
)

// TimeEntryService определяет интерфейс бизнес-логики для записей времени
type TimeEntryService interface {
	Create(ctx context.Context, req *dto.CreateTimeEntryRequest) (*domain.TimeEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	List(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}

type timeEntryService struct {
	store repository.Store
}

// NewTimeEntryService создаёт новый экземпляр сервиса
func NewTimeEntryService(store repository.Store) TimeEntryService {
	return &timeEntryService{store: store}
}

func (s *timeEntryService) Create(ctx context.Context, req *dto.CreateTimeEntryRequest) (*domain.TimeEntry, error) {
	workDate, err := dto.ParseDate(req.WorkDate)
	if err != nil {
		return nil, err
	}
	if req.Hours <= 0 {
		return nil, errNonPositiveHours
	}

	entry := &domain.TimeEntry{
		ProjectID:   req.ProjectID,
		WorkDate:    workDate,
		Hours:       req.Hours,
		Description: req.Description,
		Billable:    boolOrDefault(req.Billable, true),
	}

	var created *domain.TimeEntry
	err = s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := requireProject(ctx, tx, entry.ProjectID); err != nil {
			return err
		}

		if err := tx.TimeEntries().Create(ctx, entry); err != nil {
			return err
		}

		var err error
		created, err = tx.TimeEntries().GetByID(ctx, entry.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *timeEntryService) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	return s.store.TimeEntries().GetByID(ctx, id)
}

func (s *timeEntryService) List(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	if !filter.Dates.Valid() {
		return nil, domain.ErrInvalidDateRange
	}
	return s.store.TimeEntries().List(ctx, filter)
}

// Update применяет только переданные поля; updated_at обновляется,
// только если запрос что-то изменил
func (s *timeEntryService) Update(ctx context.Context, id int64, req *dto.UpdateTimeEntryRequest) (*domain.TimeEntry, error) {
	var workDate time.Time
	if req.WorkDate.Set {
		var err error
		if workDate, err = dto.ParseDate(req.WorkDate.Value); err != nil {
			return nil, err
		}
	}
	if req.Hours.Set && req.Hours.Value <= 0 {
		return nil, errNonPositiveHours
	}

	var updated *domain.TimeEntry
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		entry, err := tx.TimeEntries().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if req.ProjectID.Set {
			if err := requireProject(ctx, tx, req.ProjectID.Value); err != nil {
				return err
			}
		}

		changed := req.ProjectID.Apply(&entry.ProjectID)
		if req.WorkDate.Set {
			entry.WorkDate = workDate
			changed = true
		}
		changed = req.Hours.Apply(&entry.Hours) || changed
		changed = req.Description.Apply(&entry.Description) || changed
		changed = req.Billable.Apply(&entry.Billable) || changed

		if !changed {
			updated = entry
			return nil
		}

		if err := tx.TimeEntries().Update(ctx, entry); err != nil {
			return err
		}

		updated, err = tx.TimeEntries().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *timeEntryService) Delete(ctx context.Context, id int64) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.TimeEntries().Delete(ctx, id)
	})
}

var errNonPositiveHours = fmt.Errorf("hours must be greater than 0: %w", domain.ErrValidation)

func requireProject(ctx context.Context, tx repository.Store, projectID int64) error {
	exists, err := tx.Projects().Exists(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProjectReference
	}
	return nil
}
