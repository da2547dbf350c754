package handler

import (
	"log/slog"
	"net/http"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/service"
)

type DepartmentHandler struct {
	base
	service service.DepartmentService
}

func NewDepartmentHandler(svc service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		base:    newBase(logger),
		service: svc,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseListDepartmentsQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if !h.validateQuery(w, &query) {
		return
	}

	departments, err := h.service.List(r.Context(), domain.DepartmentFilter{
		CustomerID: query.CustomerID,
		Page:       toPage(query.PageQuery),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		resp[i] = toDepartmentResponse(&departments[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !h.decode(w, r, &req) {
		return
	}

	dept, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	dept, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	var req dto.UpdateDepartmentRequest
	if !h.decode(w, r, &req) {
		return
	}

	dept, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:         dept.ID,
		Name:       dept.Name,
		CustomerID: dept.CustomerID,
	}
}
