package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured line per request, tagged with the
// request ID so log lines correlate with the X-Request-ID echoed to the
// client. Install it after RequestID.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", RequestIDFrom(c),
		}

		if status >= http.StatusInternalServerError {
			log.Error("request", attrs...)

			return
		}

		log.Info("request", attrs...)
	}
}
