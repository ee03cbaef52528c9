package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every HTTP request with latency and status
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
				String("client_ip", c.RealIP()),
				Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case res.Status >= 500:
				zapLogger.Error("HTTP request", fields...)
			case res.Status >= 400:
				zapLogger.Warn("HTTP request", fields...)
			default:
				zapLogger.Info("HTTP request", fields...)
			}

			return nil
		}
	}
}
