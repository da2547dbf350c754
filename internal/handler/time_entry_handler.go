package handler

import (
	"log/slog"
	"net/http"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/service"
)

type TimeEntryHandler struct {
	base
	service service.TimeEntryService
}

func NewTimeEntryHandler(svc service.TimeEntryService, logger *slog.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{
		base:    newBase(logger),
		service: svc,
	}
}

func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseListTimeEntriesQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if !h.validateQuery(w, &query) {
		return
	}

	entries, err := h.service.List(r.Context(), domain.TimeEntryFilter{
		ProjectID:  query.ProjectID,
		CustomerID: query.CustomerID,
		Billable:   query.Billable,
		Dates:      domain.DateRange{From: query.From, To: query.To},
		Page:       toPage(query.PageQuery),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.TimeEntryResponse, len(entries))
	for i := range entries {
		resp[i] = toTimeEntryResponse(&entries[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTimeEntryRequest
	if !h.decode(w, r, &req) {
		return
	}

	entry, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toTimeEntryResponse(entry))
}

func (h *TimeEntryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid time entry id", err.Error())
		return
	}

	entry, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

func (h *TimeEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid time entry id", err.Error())
		return
	}

	var req dto.UpdateTimeEntryRequest
	if !h.decode(w, r, &req) {
		return
	}

	entry, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTimeEntryResponse(entry))
}

func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid time entry id", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTimeEntryResponse(e *domain.TimeEntry) dto.TimeEntryResponse {
	return dto.TimeEntryResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		WorkDate:    dto.FormatDate(e.WorkDate),
		Hours:       e.Hours,
		Description: e.Description,
		Billable:    e.Billable,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
