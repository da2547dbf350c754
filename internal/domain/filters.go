package domain

import "time"

const (
	// DefaultLimit - размер страницы по умолчанию
	DefaultLimit = 1000
	// MaxLimit - максимальное число записей, возвращаемых за один запрос
	MaxLimit = 10000
)

// Page задаёт смещение и размер страницы списка
type Page struct {
	Skip  int
	Limit int
}

// Normalize приводит параметры страницы к допустимым границам
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// CustomerFilter - фильтры списка заказчиков
type CustomerFilter struct {
	Search *string
	Active *bool
	Page   Page
}

// DepartmentFilter - фильтры списка подразделений
type DepartmentFilter struct {
	CustomerID *int64
	Page       Page
}

// ProjectFilter - фильтры списка проектов
type ProjectFilter struct {
	CustomerID   *int64
	DepartmentID *int64
	Active       *bool
	Page         Page
}

// DateRange - включительный диапазон дат работы; nil-граница не ограничивает
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Valid сообщает, что нижняя граница не превышает верхнюю
func (r DateRange) Valid() bool {
	return r.From == nil || r.To == nil || !r.From.After(*r.To)
}

// TimeEntryFilter - фильтры списка записей времени
type TimeEntryFilter struct {
	ProjectID  *int64
	CustomerID *int64
	Billable   *bool
	Dates      DateRange
	Page       Page
}

// ReportFilter - фильтры отчётов
type ReportFilter struct {
	Dates    DateRange
	Billable *bool
}
