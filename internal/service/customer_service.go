package service

import (
	"context"
	"strings"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/repository"
)

// CustomerService определяет интерфейс бизнес-логики для заказчиков
type CustomerService interface {
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCustomerRequest) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerService struct {
	store repository.Store
}

// NewCustomerService создаёт новый экземпляр сервиса
func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:         strings.TrimSpace(req.Name),
		ContactEmail: req.ContactEmail,
		Notes:        req.Notes,
		Active:       boolOrDefault(req.Active, true),
	}

	var created *domain.Customer
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		// Проверяем уникальность имени
		exists, err := tx.Customers().ExistsByName(ctx, customer.Name, nil)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateCustomerName
		}

		if err := tx.Customers().Create(ctx, customer); err != nil {
			return err
		}

		created, err = tx.Customers().GetByID(ctx, customer.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *customerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.store.Customers().GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	return s.store.Customers().List(ctx, filter)
}

func (s *customerService) Update(ctx context.Context, id int64, req *dto.UpdateCustomerRequest) (*domain.Customer, error) {
	var updated *domain.Customer
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		customer, err := tx.Customers().GetByID(ctx, id)
		if err != nil {
			return err
		}

		changed := false

		// Обновляем имя, если передано
		if req.Name.Set {
			name := strings.TrimSpace(req.Name.Value)

			exists, err := tx.Customers().ExistsByName(ctx, name, &id)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrDuplicateCustomerName
			}

			customer.Name = name
			changed = true
		}

		changed = req.ContactEmail.Apply(&customer.ContactEmail) || changed
		changed = req.Notes.Apply(&customer.Notes) || changed
		changed = req.Active.Apply(&customer.Active) || changed

		if !changed {
			updated = customer
			return nil
		}

		if err := tx.Customers().Update(ctx, customer); err != nil {
			return err
		}

		updated, err = tx.Customers().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete удаляет заказчика вместе с его подразделениями.
// Пока на заказчика ссылается хотя бы один проект, удаление запрещено.
func (s *customerService) Delete(ctx context.Context, id int64) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		exists, err := tx.Customers().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCustomerNotFound
		}

		hasProjects, err := tx.Projects().ExistsByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if hasProjects {
			return domain.ErrCustomerHasProjects
		}

		return tx.Customers().Delete(ctx, id)
	})
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
