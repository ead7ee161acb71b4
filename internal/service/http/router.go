package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NewRouter собирает маршруты JSON API витрины.
func NewRouter(h *Handler, logger *log.Entry) *gin.Engine {
	if logger == nil {
		logger = log.WithField("component", "http-api")
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	v1 := r.Group("/v1")
	{
		v1.GET("/products", h.QueryProducts)

		v1.POST("/orders", h.CreateOrder)
		v1.GET("/orders", h.ListOrders)
		v1.DELETE("/orders", h.ClearOrders)
		v1.GET("/orders/status/:status", h.GetOrdersByStatus)
		v1.GET("/orders/:id", h.GetOrderByID)
		v1.PATCH("/orders/:id/status", h.UpdateOrderStatus)
		v1.DELETE("/orders/:id", h.DeleteOrder)
	}

	return r
}

// requestLogger пишет строку доступа на каждый запрос.
func requestLogger(logger *log.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("http request")
	}
}
