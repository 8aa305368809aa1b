package middleware

import (
	"time"

	"Shelf/pkg/context"
	"Shelf/pkg/log"
	"Shelf/pkg/snowflake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// GinZap 记录访问日志，并为每个请求分配 request id
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = snowflake.GenString()
		}
		c.Set(context.CtxRequestID, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.L.Error("request", fields...)
		case status >= 400:
			log.L.Warn("request", fields...)
		default:
			log.L.Info("request", fields...)
		}
	}
}
