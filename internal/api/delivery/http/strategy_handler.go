package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-monetization-engine/internal/api/dto"
	"golang-monetization-engine/internal/api/service"
	generatorservice "golang-monetization-engine/internal/generator/service"
	"golang-monetization-engine/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// StrategyHandler handles HTTP requests for monetization strategies.
type StrategyHandler struct {
	strategyService service.StrategyService
	logger          *logger.Logger
}

// NewStrategyHandler creates a new StrategyHandler.
func NewStrategyHandler(strategyService service.StrategyService, logger *logger.Logger) *StrategyHandler {
	return &StrategyHandler{strategyService: strategyService, logger: logger}
}

// RegisterRoutes registers the strategy routes to the Echo group.
func (h *StrategyHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/generate", h.Generate)
	g.GET("", h.GetAllStrategies)
	g.GET("/:id", h.GetStrategyByID)
	g.POST("/:id/feedback", h.ApplyFeedback)
}

// Generate godoc
// @Summary Generate monetization strategies
// @Description Run the generation pipeline synchronously on the supplied business data and market trends
// @Tags strategies
// @Accept  json
// @Produce  json
// @Param   request  body    dto.GenerateStrategiesRequest  true    "Business data and market trends"
// @Success 200 {array} dto.StrategyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /strategies/generate [post]
func (h *StrategyHandler) Generate(c echo.Context) error {
	var req dto.GenerateStrategiesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	strategies, err := h.strategyService.Generate(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, generatorservice.ErrNoInputData) ||
			errors.Is(err, generatorservice.ErrNoUsableMetrics) ||
			errors.Is(err, generatorservice.ErrNoMarketData) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, strategies)
}

// GetAllStrategies godoc
// @Summary Get all strategies
// @Description Get all generated monetization strategies
// @Tags strategies
// @Produce  json
// @Success 200 {array} dto.StrategyResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /strategies [get]
func (h *StrategyHandler) GetAllStrategies(c echo.Context) error {
	strategies, err := h.strategyService.GetAllStrategies(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get all strategies", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get strategies"})
	}
	return c.JSON(http.StatusOK, strategies)
}

// GetStrategyByID godoc
// @Summary Get a strategy by ID
// @Description Get a single monetization strategy by its ID
// @Tags strategies
// @Produce  json
// @Param   id  path    int true    "Strategy ID"
// @Success 200 {object} dto.StrategyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /strategies/{id} [get]
func (h *StrategyHandler) GetStrategyByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid strategy ID"})
	}

	strategy, err := h.strategyService.GetStrategyByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Strategy not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, strategy)
}

// ApplyFeedback godoc
// @Summary Apply feedback to a strategy
// @Description Enqueue performance feedback for asynchronous strategy optimization
// @Tags strategies
// @Accept  json
// @Produce  json
// @Param   id  path    int true    "Strategy ID"
// @Param   feedback  body    dto.FeedbackRequest  true    "Performance feedback metrics"
// @Success 202 {object} dto.StrategyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /strategies/{id}/feedback [post]
func (h *StrategyHandler) ApplyFeedback(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid strategy ID"})
	}

	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	strategy, err := h.strategyService.ApplyFeedback(c.Request().Context(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Strategy not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusAccepted, strategy)
}
