package domain

import (
	"time"
)

// Customer представляет заказчика, для которого ведётся учёт времени
type Customer struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	ContactEmail *string   `json:"contact_email" gorm:"type:varchar(255)"`
	Notes        *string   `json:"notes" gorm:"type:text"`
	Active       bool      `json:"active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`
}

// TableName задаёт имя таблицы для GORM
func (Customer) TableName() string {
	return "customers"
}

// Department представляет подразделение заказчика.
// Удаляется каскадно вместе с заказчиком.
type Department struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"type:varchar(255);not null"`
	CustomerID int64  `json:"customer_id" gorm:"not null;index"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Project представляет проект заказчика.
// Заказчика нельзя удалить, пока на него ссылается хотя бы один проект;
// при удалении подразделения DepartmentID обнуляется.
type Project struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"type:varchar(255);not null"`
	CustomerID   int64  `json:"customer_id" gorm:"not null;index"`
	DepartmentID *int64 `json:"department_id" gorm:"index"`
	Active       bool   `json:"active" gorm:"not null"`
}

// TableName задаёт имя таблицы для GORM
func (Project) TableName() string {
	return "projects"
}

// TimeEntry представляет запись об отработанном времени по проекту
type TimeEntry struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID   int64     `json:"project_id" gorm:"not null;index"`
	WorkDate    time.Time `json:"work_date" gorm:"type:date;not null;index"`
	Hours       float64   `json:"hours" gorm:"not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Billable    bool      `json:"billable" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (TimeEntry) TableName() string {
	return "time_entries"
}

// ProjectHours - строка отчёта по проектам
type ProjectHours struct {
	ProjectID    int64
	ProjectName  string
	CustomerID   int64
	CustomerName string
	Hours        float64
}

// CustomerHours - строка отчёта по заказчикам
type CustomerHours struct {
	CustomerID   int64
	CustomerName string
	Hours        float64
}
