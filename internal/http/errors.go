package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psygen-api/internal/service"
)

// respondError traduce errores de servicio a HTTP.
// Validacion -> 400, servicio sin configurar -> 503, el resto -> 500 con el detalle del upstream.
func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, service.ErrEmptyImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrServiceNotConfigured):
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service not configured"})
	default:
		logger.Error(op+" failed", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  op + " failed",
			"detail": err.Error(),
		})
	}
}
