package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc JWTVerifier,
	analysisH *AnalysisHandler,
	forecastH *ForecastHandler,
	settingsH *SettingsHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Rutas de cliente autenticadas.
	authed := r.Group("/", JWTAuthMiddleware(jwtSvc))

	analysis := authed.Group("/analysis")
	analysis.POST("", analysisH.CreateAnalysis)
	analysis.GET("/history", analysisH.GetHistory)
	analysis.GET("/:id", analysisH.GetAnalysis)

	authed.GET("/forecast", forecastH.GetForecast)

	settings := authed.Group("/settings")
	settings.GET("/goal", settingsH.GetGoal)
	settings.PUT("/goal", settingsH.SetGoal)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
