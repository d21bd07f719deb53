package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "arbapi/internal/errors"
	"arbapi/pkg/contracts/domain"
)

// StatusHandler serves the runtime-status control surface
type StatusHandler struct {
	service      StatusServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service StatusServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *StatusHandler {
	return &StatusHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "status_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the status routes
func (h *StatusHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetStatus)
	r.Post("/bot-enabled", h.SetBotEnabled)

	return r
}

// setBotEnabledRequest is the toggle payload. Enabled is a pointer so a
// missing or non-boolean field fails validation instead of silently
// defaulting to false.
type setBotEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// GetStatus handles GET /api/status
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context())
	if err != nil {
		h.renderStatusError(w, r, err)
		return
	}

	render.JSON(w, r, h.statusResponse(r, status))
}

// SetBotEnabled handles POST /api/status/bot-enabled
func (h *StatusHandler) SetBotEnabled(w http.ResponseWriter, r *http.Request) {
	var req setBotEnabledRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("enabled", "Body must be JSON with a boolean 'enabled' field"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("enabled", "Field 'enabled' is required and must be a boolean"))
		return
	}

	status, err := h.service.SetBotEnabled(r.Context(), *req.Enabled)
	if err != nil {
		h.renderStatusError(w, r, err)
		return
	}

	render.JSON(w, r, h.statusResponse(r, status))
}

// statusResponse builds the boundary shape from a status row.
// dbConnected reports a fresh read-handle ping rather than assuming
// reachability; a toggle goes through the write handle, so the two can
// disagree.
func (h *StatusHandler) statusResponse(r *http.Request, status domain.RuntimeStatus) domain.StatusResponse {
	dbConnected := true
	if err := h.service.Ping(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "store ping failed",
			slog.String("error", err.Error()))
		dbConnected = false
	}

	return domain.StatusResponse{
		Ok:            true,
		BotEnabled:    status.BotEnabled,
		BotRunning:    status.BotRunning,
		WsConnected:   status.WsConnected,
		DbConnected:   dbConnected,
		LastHeartbeat: status.LastHeartbeat,
	}
}

// renderStatusError emits the status endpoints' failure shape. Store
// failures, including a never-initialized status row, surface here with
// ok:false rather than a generic error envelope.
func (h *StatusHandler) renderStatusError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "status operation failed",
		slog.String("error", err.Error()))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, domain.StatusResponse{
		Ok:          false,
		DbConnected: false,
		Error:       err.Error(),
	})
}
