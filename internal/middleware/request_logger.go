package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger writes one structured line per request after it completes.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request",
			requestAttrs(c, time.Since(start))...,
		)
	}
}

func requestAttrs(c *ginext.Context, took time.Duration) []logger.Attr {
	requestID, _ := c.Get("request_id")

	attrs := []logger.Attr{
		logger.String("request_id", toString(requestID)),
		logger.String("method", c.Request.Method),
		logger.String("path", c.Request.URL.Path),
		logger.Int("status", c.Writer.Status()),
		logger.Duration("duration", took),
	}
	// Failed handlers stash the real error here; the response body may
	// only carry an opaque message.
	if handlerErr, ok := c.Get("error"); ok {
		attrs = append(attrs, logger.String("error", toString(handlerErr)))
	}

	return attrs
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}
