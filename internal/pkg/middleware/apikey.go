package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/0xgaut85/r1x-pay/internal/utils"
)

const (
	// APIKeyHeader carries the operator key for catalog mutations.
	APIKeyHeader = "X-API-Key"
)

// RequireAPIKey validates the operator API key on protected routes. An empty
// configured key means the deployment has not enabled the operator surface;
// every request is rejected rather than silently allowed.
func RequireAPIKey(configuredKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if configuredKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
