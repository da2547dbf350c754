package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/time-manager-api/internal/domain"
	"gorm.io/gorm"
)

// ProjectRepository определяет интерфейс для работы с проектами
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByCustomer(ctx context.Context, customerID int64) (bool, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository создаёт новый экземпляр репозитория
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.translateError(ctx, r.db.WithContext(ctx).Create(project).Error, project)
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, translateNotFound(err, domain.ErrProjectNotFound)
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	query := r.db.WithContext(ctx).Model(&domain.Project{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	projects := make([]domain.Project, 0)
	err := paginate(query.Order("name ASC").Order("id ASC"), filter.Page).
		Find(&projects).Error
	return projects, err
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.translateError(ctx, r.db.WithContext(ctx).Save(project).Error, project)
}

// Delete удаляет проект вместе с его записями времени (ON DELETE CASCADE)
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.Project{}, id, domain.ErrProjectNotFound)
}

func (r *projectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Project{}, id)
}

func (r *projectRepository) ExistsByCustomer(ctx context.Context, customerID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count > 0, err
}

// translateError сообщает о нарушенной ссылке, если гонка с удалением
// обошла предварительную проверку сервиса. Поле определяется повторной
// проверкой; если её выполнить нельзя (например, транзакция PostgreSQL
// уже прервана), называются оба поля.
func (r *projectRepository) translateError(ctx context.Context, err error, project *domain.Project) error {
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		return err
	}
	if project.DepartmentID == nil {
		return domain.ErrCustomerReference
	}

	customerOK, checkErr := exists(ctx, r.db, &domain.Customer{}, project.CustomerID)
	if checkErr != nil {
		return fmt.Errorf("customer_id or department_id: %w", domain.ErrInvalidReference)
	}
	if !customerOK {
		return domain.ErrCustomerReference
	}

	departmentOK, checkErr := exists(ctx, r.db, &domain.Department{}, *project.DepartmentID)
	if checkErr != nil || departmentOK {
		return fmt.Errorf("customer_id or department_id: %w", domain.ErrInvalidReference)
	}
	return domain.ErrDepartmentReference
}
