package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/ports/api"
	"notekeeper/pkg/logger"
)

// TagHandler handles the /tags routes.
type TagHandler struct {
	tagService api.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tagService api.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags handles GET /tags with an optional searchTerm filter.
func (h *TagHandler) ListTags(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "TagHandler.ListTags"))
	log.Debug(reqCtx, "handling list tags request")

	tags, err := h.tagService.ListTags(reqCtx, ctx.Query("searchTerm"))
	if err != nil {
		log.Error(reqCtx, "failed to list tags", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, tags)
}

// GetTag handles GET /tags/:id.
func (h *TagHandler) GetTag(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "TagHandler.GetTag"))
	log.Debug(reqCtx, "handling get tag request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid tag id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid tag id")
	}

	tag, err := h.tagService.GetTag(reqCtx, id)
	if err != nil {
		log.Debug(reqCtx, "failed to get tag", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, tag)
}

// CreateTag handles POST /tags, answering 201 with a Location header.
func (h *TagHandler) CreateTag(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "TagHandler.CreateTag"))
	log.Debug(reqCtx, "handling create tag request")

	var req NameRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, "invalid request body", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	tag, err := h.tagService.CreateTag(reqCtx, req.Name)
	if err != nil {
		log.Error(reqCtx, "failed to create tag", zap.Error(err))
		return handleError(ctx, err)
	}

	ctx.Location(fmt.Sprintf("%s/%d", ctx.Path(), tag.ID))
	return respondJSON(ctx, fiber.StatusCreated, tag)
}

// UpdateTag handles PUT /tags/:id.
func (h *TagHandler) UpdateTag(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "TagHandler.UpdateTag"))
	log.Debug(reqCtx, "handling update tag request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid tag id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid tag id")
	}

	var req NameRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, "invalid request body", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	tag, err := h.tagService.UpdateTag(reqCtx, id, req.Name)
	if err != nil {
		log.Debug(reqCtx, "failed to update tag", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, tag)
}

// DeleteTag handles DELETE /tags/:id, answering 204 even for missing ids.
func (h *TagHandler) DeleteTag(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "TagHandler.DeleteTag"))
	log.Debug(reqCtx, "handling delete tag request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid tag id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid tag id")
	}

	if err := h.tagService.DeleteTag(reqCtx, id); err != nil {
		log.Error(reqCtx, "failed to delete tag", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
