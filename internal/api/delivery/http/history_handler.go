package http

import (
	"net/http"
	"strconv"

	"golang-monetization-engine/internal/api/service"
	"golang-monetization-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// HistoryHandler handles HTTP requests for generation history.
type HistoryHandler struct {
	historyService service.HistoryService
	logger         *logger.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService, logger *logger.Logger) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, logger: logger}
}

// RegisterRoutes registers the generation history routes to the Echo group.
func (h *HistoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAllHistories)
	g.GET("/:id", h.GetHistoryByID)
}

// RegisterJobRoutes registers the job-specific generation history routes.
func (h *HistoryHandler) RegisterJobRoutes(g *echo.Group) {
	g.GET("/:id/history", h.GetHistoriesByJobID)
}

// GetAllHistories godoc
// @Summary Get all generation histories
// @Description Get all generation history records
// @Tags history
// @Produce  json
// @Success 200 {array} dto.HistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /history [get]
func (h *HistoryHandler) GetAllHistories(c echo.Context) error {
	histories, err := h.historyService.GetAllHistories(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all generation histories", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get generation histories"})
	}
	return c.JSON(http.StatusOK, histories)
}

// GetHistoryByID godoc
// @Summary Get a generation history by ID
// @Description Get a single generation history record by its ID
// @Tags history
// @Produce  json
// @Param   id  path    int true    "History ID"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /history/{id} [get]
func (h *HistoryHandler) GetHistoryByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid history ID"})
	}

	history, err := h.historyService.GetHistoryByID(c.Request().Context(), uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, history)
}

// GetHistoriesByJobID godoc
// @Summary Get generation histories for a job
// @Description Get all generation history records for a specific job ID
// @Tags jobs
// @Produce  json
// @Param   id  path    int true    "Job ID"
// @Success 200 {array} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /jobs/{id}/history [get]
func (h *HistoryHandler) GetHistoriesByJobID(c echo.Context) error {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid job ID"})
	}

	histories, err := h.historyService.GetHistoriesByJobID(c.Request().Context(), uint(jobID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, histories)
}
