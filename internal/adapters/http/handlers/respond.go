// Package handlers contains the HTTP handlers for notes, folders and tags.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"notekeeper/internal/adapters/http/middleware"
	"notekeeper/internal/app"
	"notekeeper/internal/domain/entities"
)

// requestContext returns the request-scoped context attached by the
// middleware chain, falling back to the fiber context.
func requestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals(middleware.RequestContextKey).(context.Context); ok {
		return reqCtx
	}
	return ctx.Context()
}

func respondJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func respondMessage(ctx fiber.Ctx, status int, message string) error {
	return respondJSON(ctx, status, fiber.Map{"message": message})
}

// handleError maps service errors onto the transport contract: validation
// failures become 400 with the validation message, missing entities become
// 404, everything else is a store failure and becomes 500.
func handleError(ctx fiber.Ctx, err error) error {
	var validationErr *app.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return respondMessage(ctx, fiber.StatusBadRequest, validationErr.Message)
	case errors.Is(err, entities.ErrNoteNotFound),
		errors.Is(err, entities.ErrFolderNotFound),
		errors.Is(err, entities.ErrTagNotFound):
		return respondMessage(ctx, fiber.StatusNotFound, "not found")
	default:
		return respondMessage(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}

// parseIDParam reads a positive integer route parameter.
func parseIDParam(ctx fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}
