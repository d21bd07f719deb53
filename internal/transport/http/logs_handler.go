package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "arbapi/internal/errors"
)

// LogsHandler serves the externally-written bot log tail
type LogsHandler struct {
	service      LogsServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewLogsHandler creates a new logs handler
func NewLogsHandler(service LogsServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *LogsHandler {
	return &LogsHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "logs_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the logs routes
func (h *LogsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetLogs)

	return r
}

// GetLogs handles GET /api/logs
func (h *LogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	tail, err := h.service.Tail(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to tail bot log",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, tail)
}
