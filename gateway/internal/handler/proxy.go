package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1"

type proxyFunc func(c echo.Context, path string) ([]byte, string, int, error)

// proxy forwards the request to the same path on the backend and relays the
// answer untouched.
func (h *Handler) proxy(fn proxyFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := strings.TrimPrefix(c.Request().URL.Path, apiPrefix)
		data, contentType, code, err := fn(c, path)
		if err != nil {
			return httpError(code, err)
		}
		if contentType == "" {
			contentType = echo.MIMEApplicationJSON
		}
		return c.Blob(code, contentType, data)
	}
}
