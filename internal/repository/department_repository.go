package repository

import (
	"context"
	"errors"

	"github.com/time-manager-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context, filter domain.DepartmentFilter) ([]domain.Department, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return translateDepartmentError(r.db.WithContext(ctx).Create(dept).Error)
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	if err := r.db.WithContext(ctx).First(&dept, id).Error; err != nil {
		return nil, translateNotFound(err, domain.ErrDepartmentNotFound)
	}
	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context, filter domain.DepartmentFilter) ([]domain.Department, error) {
	query := r.db.WithContext(ctx).Model(&domain.Department{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	departments := make([]domain.Department, 0)
	err := paginate(query.Order("name ASC").Order("id ASC"), filter.Page).
		Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	return translateDepartmentError(r.db.WithContext(ctx).Save(dept).Error)
}

// Delete удаляет подразделение. Проекты подразделения остаются,
// их department_id обнуляется ограничением ON DELETE SET NULL.
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.Department{}, id, domain.ErrDepartmentNotFound)
}

func (r *departmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Department{}, id)
}

func translateDepartmentError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrCustomerReference
	}
	return err
}
