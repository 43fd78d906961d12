package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ObserveFunc receives one finished request. route is the registered path
// pattern, not the raw URI.
type ObserveFunc func(method, route string, status int, elapsed time.Duration)

// Observe reports every request after the error handler has written the
// response, so status reflects what the client saw. The error is still
// returned for outer middlewares; the handler skips committed responses.
func Observe(fn ObserveFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			fn(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))
			return err
		}
	}
}
