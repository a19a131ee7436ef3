// Package middleware contains the HTTP middleware chain.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notekeeper/pkg/logger"
)

// RequestContextKey is the Locals key under which the request-scoped
// context (carrying the request ID) is stored.
const RequestContextKey = "requestContext"

// NewRequestContextMiddleware attaches a context with a fresh request ID to
// every request so downstream log entries correlate.
func NewRequestContextMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx := logger.NewRequestIDContext(ctx.Context(), "")
		ctx.Locals(RequestContextKey, reqCtx)
		return ctx.Next()
	}
}
