// Package middleware holds the Echo middlewares shared by all handlers.
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/skycab/ridepool/internal/pkg/logger"
)

// RequestIDMiddleware tags every request with an X-Request-ID, reusing the
// caller's when present.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set("X-Request-ID", requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}

// PanicRecoveryMiddleware recovers handler panics, logs the stack trace and
// answers 500 instead of dropping the connection.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	req := c.Request()
	requestID, _ := c.Get("request_id").(string)

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		response := map[string]interface{}{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred while processing your request",
		}
		if requestID != "" {
			response["request_id"] = requestID
		}
		if err := c.JSON(http.StatusInternalServerError, response); err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
