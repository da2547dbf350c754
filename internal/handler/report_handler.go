package handler

import (
	"log/slog"
	"net/http"

	"github.com/time-manager-api/internal/domain"
	"github.com/time-manager-api/internal/dto"
	"github.com/time-manager-api/internal/service"
)

type ReportHandler struct {
	base
	service service.ReportService
}

func NewReportHandler(svc service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		base:    newBase(logger),
		service: svc,
	}
}

func (h *ReportHandler) ByProject(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.service.ByProject(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.ProjectSummaryResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.ProjectSummaryResponse{
			ProjectID:    row.ProjectID,
			ProjectName:  row.ProjectName,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Hours:        row.Hours,
		}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ReportHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.service.ByCustomer(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.CustomerSummaryResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.CustomerSummaryResponse{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			Hours:        row.Hours,
		}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ReportHandler) parseFilter(w http.ResponseWriter, r *http.Request) (domain.ReportFilter, bool) {
	query, err := parseReportQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return domain.ReportFilter{}, false
	}

	return domain.ReportFilter{
		Dates:    domain.DateRange{From: query.From, To: query.To},
		Billable: query.Billable,
	}, true
}
