package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psygen-api/internal/service"
)

type SocialHandler struct {
	logger  *zap.Logger
	service *service.SocialService
}

func NewSocialHandler(logger *zap.Logger, svc *service.SocialService) *SocialHandler {
	return &SocialHandler{logger: logger, service: svc}
}

// AnalyzeWhatsApp maneja POST /analyze-whatsapp.
func (h *SocialHandler) AnalyzeWhatsApp(c *gin.Context) {
	var req struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid whatsapp request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.service.AnalyzeWhatsApp(c.Request.Context(), req.Image)
	if err != nil {
		respondError(c, h.logger, "whatsapp analysis", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
