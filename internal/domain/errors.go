package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок, по которым транспортный слой выбирает код ответа
var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidReference = errors.New("referenced entity does not exist")
	ErrDuplicate        = errors.New("duplicate value")
	ErrNotFound         = errors.New("not found")
	ErrRestricted       = errors.New("delete restricted by dependent records")
)

// Определение бизнес-ошибок
var (
	ErrCustomerNotFound   = fmt.Errorf("customer %w", ErrNotFound)
	ErrDepartmentNotFound = fmt.Errorf("department %w", ErrNotFound)
	ErrProjectNotFound    = fmt.Errorf("project %w", ErrNotFound)
	ErrTimeEntryNotFound  = fmt.Errorf("time entry %w", ErrNotFound)

	ErrCustomerReference   = fmt.Errorf("customer_id: %w", ErrInvalidReference)
	ErrDepartmentReference = fmt.Errorf("department_id: %w", ErrInvalidReference)
	ErrProjectReference    = fmt.Errorf("project_id: %w", ErrInvalidReference)

	ErrDuplicateCustomerName = fmt.Errorf("customer name: %w", ErrDuplicate)
	ErrCustomerHasProjects   = fmt.Errorf("customer has projects: %w", ErrRestricted)

	ErrInvalidDateRange = fmt.Errorf("from must not be after to: %w", ErrValidation)
)
