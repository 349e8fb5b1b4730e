package chi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/domain"
	"github.com/eduwijs/querywise/internal/metrics"
	queryuc "github.com/eduwijs/querywise/internal/usecase/query"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the query engine over HTTP.
type Server struct {
	query         *queryuc.Service
	idx           *catalog.Index
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(query *queryuc.Service, idx *catalog.Index, log *zap.Logger) *Server {
	s := &Server{
		query:  query,
		idx:    idx,
		logger: log,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, "empty_query"),
		sentinelHandler(domain.ErrCourseNotFound, http.StatusNotFound, "course_not_found"),
	}
	return s
}

// Router builds the chi router with middleware and all routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(metrics.Middleware())

	r.Get("/healthz", s.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/query", s.HandleQuery)
		r.Get("/intents", s.ClassifyQuery)
		r.Get("/courses", s.ListCourses)
		r.Get("/courses/{id}", s.GetCourse)
	})
	return r
}

// ClassifyQuery handles GET /v1/intents?q=... — classification only,
// for debugging the rule table.
func (s *Server) ClassifyQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		s.handleDomainError(w, domain.ErrEmptyQuery)
		return
	}
	in, confidence, lang := s.query.Inspect(q)
	writeJSON(w, http.StatusOK, intentResponse{
		Query:      q,
		Intent:     string(in),
		Confidence: confidence,
		Language:   string(lang),
	})
}

// HandleQuery handles POST /v1/query.
func (s *Server) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}

	res, err := s.query.Handle(r.Context(), req.Query, req.Context.toDomain())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resultToResponse(&res))
}

// ListCourses handles GET /v1/courses.
func (s *Server) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses := s.idx.Courses()
	items := make([]courseResponse, len(courses))
	for i := range courses {
		items[i] = courseToResponse(&courses[i])
	}
	writeJSON(w, http.StatusOK, courseListResponse{Items: items, Total: len(items)})
}

// GetCourse handles GET /v1/courses/{id}.
func (s *Server) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := s.idx.Course(id)
	if !ok {
		s.handleDomainError(w, domain.ErrCourseNotFound)
		return
	}
	writeJSON(w, http.StatusOK, courseToResponse(&c))
}

// Health handles GET /healthz. The engine is healthy once the catalog
// snapshot exists; there are no downstream dependencies to probe.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"courses": s.idx.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client
// without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyQuery,
		domain.ErrCourseNotFound,
		domain.ErrDuplicateCourse,
		domain.ErrCatalogUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
