package dto

import (
	"fmt"
	"time"

	"github.com/time-manager-api/internal/domain"
)

// ParseDate разбирает дату в формате YYYY-MM-DD как полночь UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, domain.ErrValidation)
	}
	return t, nil
}

// FormatDate форматирует дату работы для ответа
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
