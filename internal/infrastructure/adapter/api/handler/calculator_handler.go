package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/time-calculator/internal/domain/error"
	coreport "github.com/amirhossein-jamali/time-calculator/internal/domain/port/core"
	"github.com/amirhossein-jamali/time-calculator/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/time-calculator/internal/infrastructure/adapter/api/dto"
)

// Defaults applies to parameters a request leaves empty
type Defaults struct {
	Format     string
	TargetUnit string
}

// CalculatorHandler exposes the calculator operations over HTTP
type CalculatorHandler struct {
	calculator   usecase.CalculatorUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	defaults     Defaults
}

// NewCalculatorHandler creates a new calculator handler instance
func NewCalculatorHandler(
	calculator usecase.CalculatorUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaults Defaults,
) *CalculatorHandler {
	return &CalculatorHandler{
		calculator:   calculator,
		timeProvider: timeProvider,
		logger:       logger,
		defaults:     defaults,
	}
}

// bind decodes query, form or JSON parameters. A failed bind has already written a 400.
func (h *CalculatorHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		h.logger.Warn("Invalid request parameters", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidRequest),
			Message: "Invalid request parameters: " + err.Error(),
		})
		return false
	}
	return true
}

// AddDuration handles /time/add
func (h *CalculatorHandler) AddDuration(c *gin.Context) {
	var req dto.ShiftRequest
	if !h.bind(c, &req) {
		return
	}
	c.String(http.StatusOK, h.calculator.AddDuration(c.Request.Context(), req.Duration, req.Base))
}

// SubtractDuration handles /time/subtract
func (h *CalculatorHandler) SubtractDuration(c *gin.Context) {
	var req dto.ShiftRequest
	if !h.bind(c, &req) {
		return
	}
	c.String(http.StatusOK, h.calculator.SubtractDuration(c.Request.Context(), req.Duration, req.Base))
}

// TimeDifference handles /time/difference
func (h *CalculatorHandler) TimeDifference(c *gin.Context) {
	var req dto.DifferenceRequest
	if !h.bind(c, &req) {
		return
	}
	c.String(http.StatusOK, h.calculator.TimeDifference(c.Request.Context(), req.Start, req.End))
}

// ConvertDuration handles /duration/convert
func (h *CalculatorHandler) ConvertDuration(c *gin.Context) {
	var req dto.ConvertRequest
	if !h.bind(c, &req) {
		return
	}
	if req.Unit == "" {
		req.Unit = h.defaults.TargetUnit
	}
	c.String(http.StatusOK, h.calculator.ConvertDuration(c.Request.Context(), req.Duration, req.Unit))
}

// FormatCurrentTime handles /time/format
func (h *CalculatorHandler) FormatCurrentTime(c *gin.Context) {
	var req dto.FormatRequest
	if !h.bind(c, &req) {
		return
	}
	if req.Format == "" {
		req.Format = h.defaults.Format
	}
	c.String(http.StatusOK, h.calculator.FormatCurrentTime(c.Request.Context(), req.Format))
}

// ParseToTimestamp handles /time/parse
func (h *CalculatorHandler) ParseToTimestamp(c *gin.Context) {
	var req dto.ParseRequest
	if !h.bind(c, &req) {
		return
	}
	c.String(http.StatusOK, h.calculator.ParseToTimestamp(c.Request.Context(), req.Text))
}

// TimeInfo handles /time/info
func (h *CalculatorHandler) TimeInfo(c *gin.Context) {
	var req dto.InfoRequest
	if !h.bind(c, &req) {
		return
	}
	c.String(http.StatusOK, h.calculator.TimeInfo(c.Request.Context(), req.Timezone))
}

// Health handles /health
func (h *CalculatorHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Time:   h.timeProvider.Now().Format(time.RFC3339),
	})
}
