package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/pkg/logger"
)

// NewRecoveryMiddleware converts handler panics into 500 responses.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx, ok := ctx.Locals(RequestContextKey).(context.Context)
		if !ok {
			reqCtx = ctx.Context()
		}
		log := logger.Log(reqCtx)

		defer func() {
			if r := recover(); r != nil {
				log.Error(reqCtx, "handler panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "internal server error",
				}); err != nil {
					log.Error(reqCtx, "failed to send error response after panic", zap.Error(err))
				}
			}
		}()

		return ctx.Next()
	}
}
