package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers and converts them
// to 500 responses instead of crashing the process
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					zapLogger.Error("panic recovered",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}
