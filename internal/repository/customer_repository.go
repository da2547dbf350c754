package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/time-manager-api/internal/domain"
	"gorm.io/gorm"
)

// CustomerRepository определяет интерфейс для работы с заказчиками
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository создаёт новый экземпляр репозитория
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return translateCustomerError(r.db.WithContext(ctx).Create(customer).Error)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, translateNotFound(err, domain.ErrCustomerNotFound)
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	query := r.db.WithContext(ctx).Model(&domain.Customer{})

	if filter.Search != nil && *filter.Search != "" {
		// обе стороны приводятся к нижнему регистру одной и той же функцией СУБД
		query = query.Where("LOWER(name) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(*filter.Search)+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	customers := make([]domain.Customer, 0)
	err := paginate(query.Order("name ASC").Order("id ASC"), filter.Page).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return translateCustomerError(r.db.WithContext(ctx).Save(customer).Error)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	return translateCustomerError(deleteByID(ctx, r.db, &domain.Customer{}, id, domain.ErrCustomerNotFound))
}

func (r *customerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Customer{}, id)
}

func (r *customerRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Customer{}).Where("name = ?", name)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

// translateCustomerError переводит нарушения ограничений таблицы customers.
// Ссылаться на заказчика по внешнему ключу с RESTRICT могут только проекты.
func translateCustomerError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateCustomerName
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrCustomerHasProjects
	default:
		return err
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
