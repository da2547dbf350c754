package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

var jsonNull = []byte("null")

// ErrNullNotAllowed - поле присутствует в запросе со значением null,
// но соответствующий столбец не допускает NULL
var ErrNullNotAllowed = errors.New("value must not be null")

// Optional - поле частичного обновления для столбца NOT NULL.
// Отсутствующее в JSON поле остаётся с Set == false; null отклоняется.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some возвращает переданное значение для сборки запроса в коде,
// минуя JSON
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON запоминает переданное значение и отклоняет null
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return ErrNullNotAllowed
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// Apply записывает значение в dst, если поле было передано
func (o Optional[T]) Apply(dst *T) bool {
	if !o.Set {
		return false
	}
	*dst = o.Value
	return true
}

// validationValue отдаёт валидатору указатель на значение или nil
// для пропущенного поля. Указатель нужен, чтобы omitempty не пропускал
// явно переданные нулевые значения.
func (o Optional[T]) validationValue() any {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// Nullable - поле частичного обновления для столбца, допускающего NULL.
// Различает три состояния: поле отсутствует, передан null, передано значение.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullOf возвращает явно переданный null
func NullOf[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// NullableOf возвращает явно переданное значение
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// UnmarshalJSON отмечает поле переданным, в том числе для null
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// Apply записывает значение (или nil) в dst, если поле было передано
func (n Nullable[T]) Apply(dst **T) bool {
	if !n.Set {
		return false
	}
	if n.Value == nil {
		*dst = nil
		return true
	}
	v := *n.Value
	*dst = &v
	return true
}

func (n Nullable[T]) validationValue() any {
	if !n.Set || n.Value == nil {
		return nil
	}
	v := *n.Value
	return &v
}
