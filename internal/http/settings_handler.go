package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ayonne-skin/internal/domain"
	"ayonne-skin/internal/repository"
)

// SettingsHandler expone la meta de cuidado activa del cliente.
type SettingsHandler struct {
	logger   *zap.Logger
	settings repository.SettingsRepository
}

func NewSettingsHandler(logger *zap.Logger, settings repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{logger: logger, settings: settings}
}

// GetGoal maneja GET /settings/goal.
func (h *SettingsHandler) GetGoal(c *gin.Context) {
	custID, ok := customerID(c)
	if !ok {
		return
	}

	goal, err := h.settings.GetGoal(c.Request.Context(), custID)
	if err != nil {
		h.logger.Error("load goal failed", zap.Error(err), zap.String("customer_id", custID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal, "available": domain.AllSkinGoals()})
}

// SetGoal maneja PUT /settings/goal.
func (h *SettingsHandler) SetGoal(c *gin.Context) {
	custID, ok := customerID(c)
	if !ok {
		return
	}

	var req struct {
		Goal string `json:"goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	goal, ok := domain.ParseSkinGoal(req.Goal)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown skin goal", "available": domain.AllSkinGoals()})
		return
	}

	if err := h.settings.SetGoal(c.Request.Context(), custID, goal); err != nil {
		h.logger.Error("save goal failed", zap.Error(err), zap.String("customer_id", custID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}
