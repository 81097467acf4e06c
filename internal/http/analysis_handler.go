package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ayonne-skin/internal/repository"
	"ayonne-skin/internal/service"
)

// AnalysisHandler expone los endpoints de análisis de piel.
type AnalysisHandler struct {
	logger      *zap.Logger
	analysisSvc *service.AnalysisService
	limiter     service.AnalysisRateLimiter
}

func NewAnalysisHandler(logger *zap.Logger, analysisSvc *service.AnalysisService, limiter service.AnalysisRateLimiter) *AnalysisHandler {
	return &AnalysisHandler{
		logger:      logger,
		analysisSvc: analysisSvc,
		limiter:     limiter,
	}
}

// CreateAnalysis maneja POST /analysis.
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	custID, ok := customerID(c)
	if !ok {
		return
	}

	var req struct {
		ImageURL string `json:"image_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create analysis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(custID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many analyses, try again later"})
		return
	}

	record, err := h.analysisSvc.AnalyzeImage(c.Request.Context(), custID, req.ImageURL)
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err), zap.String("customer_id", custID))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not analyze image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"analysis": record})
}

// GetAnalysis maneja GET /analysis/:id y devuelve la vista de
// presentación: puntaje, edad de piel y desglose por categorías.
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	custID, ok := customerID(c)
	if !ok {
		return
	}

	rec, categories, err := h.analysisSvc.GetAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		h.logger.Error("get analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load analysis"})
		return
	}
	if rec.CustomerID != "" && rec.CustomerID != custID {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quality_score": rec.QualityScore,
		"skin_age":      rec.SkinAge,
		"categories":    categories,
		"analysis":      rec,
	})
}

// GetHistory maneja GET /analysis/history.
func (h *AnalysisHandler) GetHistory(c *gin.Context) {
	custID, ok := customerID(c)
	if !ok {
		return
	}

	records, err := h.analysisSvc.History(c.Request.Context(), custID)
	if err != nil {
		h.logger.Error("load history failed", zap.Error(err), zap.String("customer_id", custID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": records, "count": len(records)})
}
