package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type validationValuer interface {
	validationValue() any
}

// NewValidator создаёт валидатор, который проверяет теги
// на значениях внутри Optional и Nullable
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(unwrapOptional,
		Optional[string]{},
		Optional[bool]{},
		Optional[int64]{},
		Optional[float64]{},
		Nullable[string]{},
		Nullable[int64]{},
	)

	_ = v.RegisterValidation("notblank", notBlank)

	return v
}

func unwrapOptional(field reflect.Value) any {
	if valuer, ok := field.Interface().(validationValuer); ok {
		return valuer.validationValue()
	}
	return nil
}

// notBlank отклоняет строки, состоящие только из пробелов
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}
