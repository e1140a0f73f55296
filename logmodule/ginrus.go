package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Ginrus returns a gin middleware which writes an access log line through
// logrus, tagged with the given prefix.
func Ginrus(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := log.WithFields(log.Fields{
			"prefix":  prefix,
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    path,
			"query":   c.Request.URL.RawQuery,
			"ip":      c.ClientIP(),
			"latency": time.Since(start),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
