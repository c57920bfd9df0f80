package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trivia-quiz/internal/app"
)

// NewRouter mounts the health check, the score history and the WebSocket surface.
func NewRouter(ws *WSHandler, ledger *app.ScoreLedger, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(requestLogger(logger))
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/scores", func(c *gin.Context) {
		entries, err := ledger.List(c.Request.Context())
		if err != nil {
			logger.Error("failed to list scores", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "scores unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	})
	router.GET("/ws", gin.WrapF(ws.ServeWS))
	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
