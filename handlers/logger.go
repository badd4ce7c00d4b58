package handlers

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"salonify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger stores a logger tagged with the request route in the context.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("logger", utils.GetLogger().With(
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
		))
		c.Next()
	}
}

// getLogger retrieves the request logger, or the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// AccessLogger is gin's access log with session tokens removed from the
// logged query string. A nil out writes to gin.DefaultWriter.
func AccessLogger(out io.Writer) gin.HandlerFunc {
	if out == nil {
		out = gin.DefaultWriter
	}
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output: out,
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("[GIN] %v | %3d | %13v | %15s | %-7s %#v\n%s",
				p.TimeStamp.Format("2006/01/02 - 15:04:05"),
				p.StatusCode,
				p.Latency,
				p.ClientIP,
				p.Method,
				redactQuery(p.Path),
				p.ErrorMessage,
			)
		},
	})
}

func redactQuery(path string) string {
	base, raw, found := strings.Cut(path, "?")
	if !found {
		return path
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return base
	}
	if _, ok := q["token"]; ok {
		q.Set("token", "REDACTED")
	}
	return base + "?" + q.Encode()
}
