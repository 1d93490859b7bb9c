package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"psygen-api/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
// Cada endpoint queda publicado bajo /api y en la raiz.
// Solo los proxies de trustedProxies pueden fijar la IP del cliente via X-Forwarded-For.
func NewRouter(
	logger *zap.Logger,
	trustedProxies []string,
	limiter service.RateLimiter,
	personalityH *PersonalityHandler,
	screeningH *ScreeningHandler,
	socialH *SocialHandler,
) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, trusting none", zap.Strings("trusted_proxies", trustedProxies), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		requestIDMiddleware(),
		zapLoggerMiddleware(logger),
		gin.Recovery(),
		corsMiddleware(),
		jsonContentTypeMiddleware(),
	)

	limit := rateLimitMiddleware(logger, limiter)
	for _, g := range []*gin.RouterGroup{r.Group("/api"), r.Group("")} {
		g.POST("/analyze", limit, personalityH.Analyze)
		g.POST("/score-response", limit, screeningH.ScoreResponse)
		g.POST("/analyze-depression", limit, screeningH.AnalyzeDepression)
		g.POST("/analyze-whatsapp", limit, socialH.AnalyzeWhatsApp)
		g.GET("/questions", screeningH.Questions)
		g.GET("/health", health)
	}

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
