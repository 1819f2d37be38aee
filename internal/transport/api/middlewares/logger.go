package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет структурную запись по каждому запросу после его обработки.
func Logger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := log.WithFields(logrus.Fields{
			"Method":   c.Request.Method,
			"Path":     c.Request.URL.Path,
			"Status":   c.Writer.Status(),
			"Duration": time.Since(start).String(),
			"ClientIP": c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.WithField("Errors", c.Errors.String()).Error("request failed")
			return
		}
		entry.Info("request handled")
	}
}
