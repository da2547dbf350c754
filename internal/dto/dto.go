package dto

import (
	"time"
)

// DateLayout - формат дат в запросах и ответах
const DateLayout = "2006-01-02"

// CreateCustomerRequest - запрос на создание заказчика
type CreateCustomerRequest struct {
	Name         string  `json:"name" validate:"required,notblank,max=255"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,max=255"`
	Notes        *string `json:"notes"`
	Active       *bool   `json:"active"`
}

// UpdateCustomerRequest - запрос на частичное обновление заказчика
type UpdateCustomerRequest struct {
	Name         Optional[string] `json:"name" validate:"omitempty,notblank,max=255"`
	ContactEmail Nullable[string] `json:"contact_email" validate:"omitempty,max=255"`
	Notes        Nullable[string] `json:"notes"`
	Active       Optional[bool]   `json:"active"`
}

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	CustomerID int64  `json:"customer_id" validate:"required,min=1"`
}

// UpdateDepartmentRequest - запрос на частичное обновление подразделения
type UpdateDepartmentRequest struct {
	Name       Optional[string] `json:"name" validate:"omitempty,notblank,max=255"`
	CustomerID Optional[int64]  `json:"customer_id" validate:"omitempty,min=1"`
}

// CreateProjectRequest - запрос на создание проекта
type CreateProjectRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=255"`
	CustomerID   int64  `json:"customer_id" validate:"required,min=1"`
	DepartmentID *int64 `json:"department_id" validate:"omitempty,min=1"`
	Active       *bool  `json:"active"`
}

// UpdateProjectRequest - запрос на частичное обновление проекта.
// department_id: null отвязывает проект от подразделения.
type UpdateProjectRequest struct {
	Name         Optional[string] `json:"name" validate:"omitempty,notblank,max=255"`
	CustomerID   Optional[int64]  `json:"customer_id" validate:"omitempty,min=1"`
	DepartmentID Nullable[int64]  `json:"department_id" validate:"omitempty,min=1"`
	Active       Optional[bool]   `json:"active"`
}

// CreateTimeEntryRequest - запрос на создание записи времени
type CreateTimeEntryRequest struct {
	ProjectID   int64   `json:"project_id" validate:"required,min=1"`
	WorkDate    string  `json:"work_date" validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" validate:"required,gt=0"`
	Description *string `json:"description"`
	Billable    *bool   `json:"billable"`
}

// UpdateTimeEntryRequest - запрос на частичное обновление записи времени
type UpdateTimeEntryRequest struct {
	ProjectID   Optional[int64]   `json:"project_id" validate:"omitempty,min=1"`
	WorkDate    Optional[string]  `json:"work_date" validate:"omitempty,datetime=2006-01-02"`
	Hours       Optional[float64] `json:"hours" validate:"omitempty,gt=0"`
	Description Nullable[string]  `json:"description"`
	Billable    Optional[bool]    `json:"billable"`
}

// CustomerResponse - ответ с данными заказчика
type CustomerResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactEmail *string   `json:"contact_email"`
	Notes        *string   `json:"notes"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CustomerID int64  `json:"customer_id"`
}

// ProjectResponse - ответ с данными проекта
type ProjectResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CustomerID   int64  `json:"customer_id"`
	DepartmentID *int64 `json:"department_id"`
	Active       bool   `json:"active"`
}

// TimeEntryResponse - ответ с данными записи времени
type TimeEntryResponse struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	WorkDate    string    `json:"work_date"`
	Hours       float64   `json:"hours"`
	Description *string   `json:"description"`
	Billable    bool      `json:"billable"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectSummaryResponse - строка отчёта по проектам
type ProjectSummaryResponse struct {
	ProjectID    int64   `json:"project_id"`
	ProjectName  string  `json:"project_name"`
	CustomerID   int64   `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Hours        float64 `json:"hours"`
}

// CustomerSummaryResponse - строка отчёта по заказчикам
type CustomerSummaryResponse struct {
	CustomerID   int64   `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Hours        float64 `json:"hours"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PageQuery - параметры пагинации списков
type PageQuery struct {
	Skip  int `validate:"min=0"`
	Limit int `validate:"min=1,max=10000"`
}

// ListCustomersQuery - параметры запроса списка заказчиков
type ListCustomersQuery struct {
	PageQuery
	Search *string `validate:"omitempty,max=255"`
	Active *bool
}

// ListDepartmentsQuery - параметры запроса списка подразделений
type ListDepartmentsQuery struct {
	PageQuery
	CustomerID *int64 `validate:"omitempty,min=1"`
}

// ListProjectsQuery - параметры запроса списка проектов
type ListProjectsQuery struct {
	PageQuery
	CustomerID   *int64 `validate:"omitempty,min=1"`
	DepartmentID *int64 `validate:"omitempty,min=1"`
	Active       *bool
}

// ListTimeEntriesQuery - параметры запроса списка записей времени
type ListTimeEntriesQuery struct {
	PageQuery
	ProjectID  *int64 `validate:"omitempty,min=1"`
	CustomerID *int64 `validate:"omitempty,min=1"`
	Billable   *bool
	From       *time.Time
	To         *time.Time
}

// ReportQuery - параметры запроса отчёта
type ReportQuery struct {
	From     *time.Time
	To       *time.Time
	Billable *bool
}
