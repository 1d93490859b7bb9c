package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psygen-api/internal/domain"
	"psygen-api/internal/service"
)

// ScreeningHandler expone el cuestionario y la puntuacion de respuestas.
type ScreeningHandler struct {
	logger  *zap.Logger
	service *service.ScreeningService
}

func NewScreeningHandler(logger *zap.Logger, svc *service.ScreeningService) *ScreeningHandler {
	return &ScreeningHandler{logger: logger, service: svc}
}

// ScoreResponse maneja POST /score-response.
func (h *ScreeningHandler) ScoreResponse(c *gin.Context) {
	var req service.ScoreInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid score request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.service.ScoreResponse(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "scoring", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AnalyzeDepression maneja POST /analyze-depression.
func (h *ScreeningHandler) AnalyzeDepression(c *gin.Context) {
	var req domain.DepressionAssessment
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid depression request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.service.AnalyzeDepression(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "depression analysis", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Questions maneja GET /questions.
func (h *ScreeningHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions":        domain.Questionnaire(),
		"crisis_resources": domain.CrisisResources(),
	})
}
