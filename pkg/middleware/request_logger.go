package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travigo/pkg/observability"
)

func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		dur := time.Since(start)
		observability.ObserveHTTP(route, c.Request.Method, status, dur)

		ev := logger.Info()
		if status >= 500 {
			ev = logger.Error()
		} else if status >= 400 {
			ev = logger.Warn()
		}
		ev.Str("trace_id", c.GetString("trace_id")).
			Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("duration", dur).
			Msg("http request")
	}
}
