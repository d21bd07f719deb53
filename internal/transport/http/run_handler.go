package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "arbapi/internal/errors"
	"arbapi/internal/services"
)

// RunHandler serves the run analytics endpoints
type RunHandler struct {
	service      RunServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewRunHandler creates a new run handler
func NewRunHandler(service RunServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *RunHandler {
	return &RunHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "run_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the run routes
func (h *RunHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListRuns)
	r.Get("/{runID}", h.GetRun)

	return r
}

// ListRuns handles GET /api/runs
func (h *RunHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListRuns(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list runs",
			slog.String("error", err.Error()))

		if errors.Is(err, services.ErrStoreNotFound) {
			h.errorHandler.HandleError(w, r, apierrors.ErrStoreNotFound)
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, summaries)
}

// GetRun handles GET /api/runs/{runID}
func (h *RunHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("runID", "Run ID is required"))
		return
	}

	detail, err := h.service.GetRunDetail(r.Context(), runID)
	if err != nil {
		if errors.Is(err, services.ErrRunNotFound) {
			h.errorHandler.HandleError(w, r, apierrors.RunNotFoundError(runID))
			return
		}

		h.logger.ErrorContext(r.Context(), "failed to get run detail",
			slog.String("error", err.Error()),
			slog.String("run_id", runID))

		if errors.Is(err, services.ErrStoreNotFound) {
			h.errorHandler.HandleError(w, r, apierrors.ErrStoreNotFound)
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, detail)
}
