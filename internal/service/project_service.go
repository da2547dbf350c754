package service

import (
	"context"
	"strings"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/repository"
)

// ProjectService определяет интерфейс бизнес-логики для проектов
type ProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	store repository.Store
}

// NewProjectService создаёт новый экземпляр сервиса
func NewProjectService(store repository.Store) ProjectService {
	return &projectService{store: store}
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*domain.Project, error) {
	project := &domain.Project{
		Name:         strings.TrimSpace(req.Name),
		CustomerID:   req.CustomerID,
		DepartmentID: req.DepartmentID,
		Active:       boolOrDefault(req.Active, true),
	}

	var created *domain.Project
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		if err := requireCustomer(ctx, tx, project.CustomerID); err != nil {
			return err
		}
		if project.DepartmentID != nil {
			if err := requireDepartment(ctx, tx, *project.DepartmentID); err != nil {
				return err
			}
		}

		if err := tx.Projects().Create(ctx, project); err != nil {
			return err
		}

		var err error
		created, err = tx.Projects().GetByID(ctx, project.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.Projects().GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	return s.store.Projects().List(ctx, filter)
}

func (s *projectService) Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*domain.Project, error) {
	var updated *domain.Project
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		project, err := tx.Projects().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if req.CustomerID.Set {
			if err := requireCustomer(ctx, tx, req.CustomerID.Value); err != nil {
				return err
			}
		}
		if req.DepartmentID.Set && req.DepartmentID.Value != nil {
			if err := requireDepartment(ctx, tx, *req.DepartmentID.Value); err != nil {
				return err
			}
		}

		changed := false
		if req.Name.Set {
			project.Name = strings.TrimSpace(req.Name.Value)
			changed = true
		}
		changed = req.CustomerID.Apply(&project.CustomerID) || changed
		changed = req.DepartmentID.Apply(&project.DepartmentID) || changed
		changed = req.Active.Apply(&project.Active) || changed

		if !changed {
			updated = project
			return nil
		}

		if err := tx.Projects().Update(ctx, project); err != nil {
			return err
		}

		updated, err = tx.Projects().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete удаляет проект вместе со всеми его записями времени
func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Projects().Delete(ctx, id)
	})
}

func requireDepartment(ctx context.Context, tx repository.Store, departmentID int64) error {
	exists, err := tx.Departments().Exists(ctx, departmentID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrDepartmentReference
	}
	return nil
}
