package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psygen-api/internal/service"
)

// PersonalityHandler expone el analisis de personalidad sobre texto libre.
type PersonalityHandler struct {
	logger  *zap.Logger
	service *service.PersonalityService
}

func NewPersonalityHandler(logger *zap.Logger, svc *service.PersonalityService) *PersonalityHandler {
	return &PersonalityHandler{logger: logger, service: svc}
}

// Analyze maneja POST /analyze.
func (h *PersonalityHandler) Analyze(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, h.logger, "analysis", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
