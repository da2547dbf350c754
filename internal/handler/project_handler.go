package handler

import (
	"log/slog"
	"net/http"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/service"
)

type ProjectHandler struct {
	base
	service service.ProjectService
}

func NewProjectHandler(svc service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		base:    newBase(logger),
		service: svc,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := parseListProjectsQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}
	if !h.validateQuery(w, &query) {
		return
	}

	projects, err := h.service.List(r.Context(), domain.ProjectFilter{
		CustomerID:   query.CustomerID,
		DepartmentID: query.DepartmentID,
		Active:       query.Active,
		Page:         toPage(query.PageQuery),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = toProjectResponse(&projects[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	project, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id", err.Error())
		return
	}

	project, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id", err.Error())
		return
	}

	var req dto.UpdateProjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	project, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id", err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toProjectResponse(p *domain.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		CustomerID:   p.CustomerID,
		DepartmentID: p.DepartmentID,
		Active:       p.Active,
	}
}
