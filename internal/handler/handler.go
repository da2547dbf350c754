package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
)

// base содержит общие для всех хендлеров зависимости и хелперы ответа
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: dto.NewValidator(),
		logger:    logger,
	}
}

// decode читает тело запроса и проверяет его. При ошибке ответ уже отправлен.
func (h *base) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}

	return true
}

// validateQuery проверяет разобранные параметры строки запроса
func (h *base) validateQuery(w http.ResponseWriter, query any) bool {
	if err := h.validator.Struct(query); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

// extractID возвращает идентификатор из последнего сегмента пути
func (h *base) extractID(r *http.Request) (int64, error) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 || idx == len(path)-1 {
		return 0, errors.New("id is required")
	}

	id, err := strconv.ParseInt(path[idx+1:], 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

func (h *base) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrValidation):
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
	case errors.Is(err, domain.ErrInvalidReference):
		h.respondError(w, http.StatusBadRequest, "invalid reference", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		h.respondError(w, http.StatusConflict, "duplicate value", err.Error())
	case errors.Is(err, domain.ErrRestricted):
		h.respondError(w, http.StatusConflict, "delete restricted", err.Error())
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *base) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
