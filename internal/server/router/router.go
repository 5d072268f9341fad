package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
// commandHandler and metricsHandler may be nil to leave their routes unregistered.
func New(handler *handlers.SimulationHandler, commandHandler *handlers.CommandHandler, metricsHandler http.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := r.Group("/api")
	api.GET("/breeds", handler.ListBreeds)
	api.GET("/breeds/:key", handler.GetBreed)

	lactation := api.Group("/lactation")
	lactation.POST("/simulate", handler.Simulate)
	lactation.POST("/compare", handler.Compare)
	lactation.GET("/ranking", handler.Ranking)
	lactation.GET("/simulations", handler.History)

	if commandHandler != nil {
		api.POST("/commands", commandHandler.Handle)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
