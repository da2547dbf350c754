package handler

import (
	"log/slog"
	"net/http"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/service"
)

type CustomerHandler struct {
	base
	service service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		base:    newBase(logger),
		service: svc,
	}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseListCustomersQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if !h.validateQuery(w, &query) {
		return
	}

	customers, err := h.service.List(r.Context(), domain.CustomerFilter{
		Search: query.Search,
		Active: query.Active,
		Page:   toPage(query.PageQuery),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = toCustomerResponse(&customers[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if !h.decode(w, r, &req) {
		return
	}

	customer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid customer id", err.Error())
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid customer id", err.Error())
		return
	}

	var req dto.UpdateCustomerRequest
	if !h.decode(w, r, &req) {
		return
	}

	customer, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid customer id", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCustomerResponse(c *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		ContactEmail: c.ContactEmail,
		Notes:        c.Notes,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
