package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ayonne-skin/internal/service"
)

// ForecastHandler expone la proyección de tendencia del cliente.
type ForecastHandler struct {
	logger      *zap.Logger
	forecastSvc *service.ForecastService
}

func NewForecastHandler(logger *zap.Logger, forecastSvc *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{logger: logger, forecastSvc: forecastSvc}
}

// GetForecast maneja GET /forecast.
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	custID, ok := customerID(c)
	if !ok {
		return
	}

	proj, err := h.forecastSvc.ProjectForCustomer(c.Request.Context(), custID)
	if err != nil {
		if errors.Is(err, service.ErrNoAnalyses) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no analyses yet, take your first one to unlock forecasts"})
			return
		}
		h.logger.Error("forecast failed", zap.Error(err), zap.String("customer_id", custID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build forecast"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecast": proj})
}
