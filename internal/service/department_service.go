package service

import (
	"context"
	"strings"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context, filter domain.DepartmentFilter) ([]domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	store repository.Store
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(store repository.Store) DepartmentService {
	return &departmentService{store: store}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	dept := &domain.Department{
		Name:       strings.TrimSpace(req.Name),
		CustomerID: req.CustomerID,
	}

	var created *domain.Department
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := requireCustomer(ctx, tx, dept.CustomerID); err != nil {
			return err
		}

		if err := tx.Departments().Create(ctx, dept); err != nil {
			return err
		}

		var err error
		created, err = tx.Departments().GetByID(ctx, dept.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.store.Departments().GetByID(ctx, id)
}

func (s *departmentService) List(ctx context.Context, filter domain.DepartmentFilter) ([]domain.Department, error) {
	return s.store.Departments().List(ctx, filter)
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	var updated *domain.Department
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		dept, err := tx.Departments().GetByID(ctx, id)
		if err != nil {
			return err
		}

		changed := false

		if req.Name.Set {
			dept.Name = strings.TrimSpace(req.Name.Value)
			changed = true
		}

		// Переносим подразделение к другому заказчику
		if req.CustomerID.Set {
			if err := requireCustomer(ctx, tx, req.CustomerID.Value); err != nil {
				return err
			}
			dept.CustomerID = req.CustomerID.Value
			changed = true
		}

		if !changed {
			updated = dept
			return nil
		}

		if err := tx.Departments().Update(ctx, dept); err != nil {
			return err
		}

		updated, err = tx.Departments().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete удаляет подразделение; проекты остаются без подразделения
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Departments().Delete(ctx, id)
	})
}

// requireCustomer проверяет, что заказчик, на которого ссылается запрос, существует
func requireCustomer(ctx context.Context, tx repository.Store, customerID int64) error {
	exists, err := tx.Customers().Exists(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCustomerReference
	}
	return nil
}
