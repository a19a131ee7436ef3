package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/pkg/logger"
)

// NewLoggerMiddleware logs every request with method, path, status and
// latency.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		reqCtx, ok := ctx.Locals(RequestContextKey).(context.Context)
		if !ok {
			reqCtx = ctx.Context()
		}
		start := time.Now()

		log := logger.Log(reqCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Debug(reqCtx, "request started")

		err := ctx.Next()

		fields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		if err != nil {
			log.Error(reqCtx, "request failed", append(fields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(reqCtx, "request completed", fields...)
		return nil
	}
}
