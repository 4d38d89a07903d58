package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// PanicError is returned in place of a recovered panic. CustomHTTPErrorHandler
// renders it as SYSTEM_001 like any other unclassified error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// PanicRecovery turns a handler panic into a *PanicError. It returns the
// error instead of writing the response, so a RequestLogger mounted outside
// it records the request with its final 500 status.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				panicErr := &PanicError{Value: r, Stack: debug.Stack()}
				logger.Error("panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(panicErr.Stack),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				err = panicErr
			}()

			return next(c)
		}
	}
}
