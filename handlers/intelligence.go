package handlers

import (
	"net/http"

	"salonify/models"
	ai "salonify/services/intelligence"
	"salonify/utils"

	"github.com/gin-gonic/gin"
)

// AIHandler serves the style advisor and the custom service estimator.
type AIHandler struct {
	AISvc ai.AIService
}

func NewAIHandler(svc ai.AIService) *AIHandler {
	return &AIHandler{AISvc: svc}
}

// SuggestStyle handles POST /api/ai/style. It always answers 200; a failed
// model call yields the fallback suggestion.
func (h *AIHandler) SuggestStyle(c *gin.Context) {
	var req models.StyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid style request", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.AISvc.SuggestStyle(c.Request.Context(), req))
}

// EstimateCustomService handles POST /api/ai/estimate. The estimate is null
// when none could be produced.
func (h *AIHandler) EstimateCustomService(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid estimate request", err.Error())
		return
	}
	estimate := h.AISvc.EstimateCustomService(c.Request.Context(), req.Description)
	c.JSON(http.StatusOK, gin.H{"estimate": estimate})
}
