package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/time-manager-api/internal/middleware"
)

// HealthCheck проверяет готовность зависимостей сервиса
type HealthCheck func(ctx context.Context) error

// resource - набор CRUD операций одной сущности
type resource interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Handlers - хендлеры всех ресурсов API
type Handlers struct {
	Customers   *CustomerHandler
	Departments *DepartmentHandler
	Projects    *ProjectHandler
	TimeEntries *TimeEntryHandler
	Reports     *ReportHandler
}

// Router настраивает маршруты API
type Router struct {
	base
	mux      *http.ServeMux
	handlers Handlers
	health   HealthCheck
	registry *prometheus.Registry
}

// NewRouter создаёт новый роутер
func NewRouter(handlers Handlers, health HealthCheck, registry *prometheus.Registry, logger *slog.Logger) *Router {
	return &Router{
		base:     newBase(logger),
		mux:      http.NewServeMux(),
		handlers: handlers,
		health:   health,
		registry: registry,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mount("/customers", r.handlers.Customers)
	r.mount("/departments", r.handlers.Departments)
	r.mount("/projects", r.handlers.Projects)
	r.mount("/time-entries", r.handlers.TimeEntries)

	r.mux.HandleFunc("/reports/", r.reportsRouter)
	r.mux.HandleFunc("/health", r.healthCheck)
	r.mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		r.respondError(w, http.StatusNotFound, "not found", "")
	})

	// Применяем middleware
	metrics := middleware.NewMetrics(r.registry)

	handler := middleware.ContentType(r.mux)
	handler = middleware.Recoverer(r.logger)(handler)
	handler = metrics.Handler(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// mount регистрирует коллекцию prefix и элементы prefix/{id}
func (r *Router) mount(prefix string, res resource) {
	collection := func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			res.List(w, req)
		case http.MethodPost:
			res.Create(w, req)
		default:
			r.methodNotAllowed(w, http.MethodGet, http.MethodPost)
		}
	}

	r.mux.HandleFunc(prefix, collection)
	r.mux.HandleFunc(prefix+"/", func(w http.ResponseWriter, req *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(req.URL.Path, prefix), "/")
		if rest == "" {
			collection(w, req)
			return
		}
		if strings.Contains(rest, "/") {
			r.respondError(w, http.StatusNotFound, "not found", "")
			return
		}

		// /{prefix}/{id}
		switch req.Method {
		case http.MethodGet:
			res.GetByID(w, req)
		case http.MethodPut, http.MethodPatch:
			res.Update(w, req)
		case http.MethodDelete:
			res.Delete(w, req)
		default:
			r.methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete)
		}
	})
}

// reportsRouter обрабатывает запросы к /reports/
func (r *Router) reportsRouter(w http.ResponseWriter, req *http.Request) {
	var serve http.HandlerFunc
	switch strings.Trim(strings.TrimPrefix(req.URL.Path, "/reports"), "/") {
	case "by-project":
		serve = r.handlers.Reports.ByProject
	case "by-customer":
		serve = r.handlers.Reports.ByCustomer
	default:
		r.respondError(w, http.StatusNotFound, "not found", "")
		return
	}

	if req.Method != http.MethodGet {
		r.methodNotAllowed(w, http.MethodGet)
		return
	}
	serve(w, req)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		r.methodNotAllowed(w, http.MethodGet)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	if r.health != nil {
		if err := r.health(ctx); err != nil {
			r.logger.Warn("health check failed", slog.Any("error", err))
			r.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	r.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	r.respondError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}
