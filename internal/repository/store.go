package repository

import (
	"context"
	"errors"

	"github.com/time-manager-api/internal/domain"
	"gorm.io/gorm"
)

// Store объединяет репозитории, работающие через одно соединение
// или одну транзакцию
type Store interface {
	Customers() CustomerRepository
	Departments() DepartmentRepository
	Projects() ProjectRepository
	TimeEntries() TimeEntryRepository
	Reports() ReportRepository

	// WithinTx выполняет fn в транзакции. Транзакция фиксируется,
	// если fn вернула nil, и откатывается при ошибке или панике.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore создаёт Store поверх пула соединений gorm
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Customers() CustomerRepository {
	return NewCustomerRepository(s.db)
}

func (s *gormStore) Departments() DepartmentRepository {
	return NewDepartmentRepository(s.db)
}

func (s *gormStore) Projects() ProjectRepository {
	return NewProjectRepository(s.db)
}

func (s *gormStore) TimeEntries() TimeEntryRepository {
	return NewTimeEntryRepository(s.db)
}

func (s *gormStore) Reports() ReportRepository {
	return NewReportRepository(s.db)
}

func (s *gormStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// paginate применяет смещение и ограничение страницы
func paginate(query *gorm.DB, page domain.Page) *gorm.DB {
	page = page.Normalize()
	return query.Offset(page.Skip).Limit(page.Limit)
}

// translateNotFound заменяет gorm.ErrRecordNotFound на доменную ошибку
func translateNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// deleteByID удаляет строку по id и возвращает notFound, если строки не было
func deleteByID(ctx context.Context, db *gorm.DB, model any, id int64, notFound error) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// exists проверяет наличие строки с заданным id в таблице модели
func exists(ctx context.Context, db *gorm.DB, model any, id int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
