package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every request with latency, status and request id
func ZapEchoMiddleware(zapLogger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("remote_ip", c.RealIP()),
			}
			if reqID := res.Header().Get(echo.HeaderXRequestID); reqID != "" {
				fields = append(fields, String("request_id", reqID))
			}

			if res.Status >= 500 {
				zapLogger.Error("request", fields...)
			} else {
				zapLogger.Info("request", fields...)
			}
			return nil
		}
	}
}
