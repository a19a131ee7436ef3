package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/ports/api"
	"notekeeper/pkg/logger"
)

// NameRequest is the writable payload shared by folders and tags.
type NameRequest struct {
	Name string `json:"name"`
}

// FolderHandler handles the /folders routes.
type FolderHandler struct {
	folderService api.FolderService
}

// NewFolderHandler creates a new folder handler.
func NewFolderHandler(folderService api.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// ListFolders handles GET /folders with an optional searchTerm filter.
func (h *FolderHandler) ListFolders(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "FolderHandler.ListFolders"))
	log.Debug(reqCtx, "handling list folders request")

	folders, err := h.folderService.ListFolders(reqCtx, ctx.Query("searchTerm"))
	if err != nil {
		log.Error(reqCtx, "failed to list folders", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, folders)
}

// GetFolder handles GET /folders/:id.
func (h *FolderHandler) GetFolder(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "FolderHandler.GetFolder"))
	log.Debug(reqCtx, "handling get folder request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid folder id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid folder id")
	}

	folder, err := h.folderService.GetFolder(reqCtx, id)
	if err != nil {
		log.Debug(reqCtx, "failed to get folder", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, folder)
}

// CreateFolder handles POST /folders, answering 201 with a Location header.
func (h *FolderHandler) CreateFolder(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "FolderHandler.CreateFolder"))
	log.Debug(reqCtx, "handling create folder request")

	var req NameRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, "invalid request body", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	folder, err := h.folderService.CreateFolder(reqCtx, req.Name)
	if err != nil {
		log.Error(reqCtx, "failed to create folder", zap.Error(err))
		return handleError(ctx, err)
	}

	ctx.Location(fmt.Sprintf("%s/%d", ctx.Path(), folder.ID))
	return respondJSON(ctx, fiber.StatusCreated, folder)
}

// UpdateFolder handles PUT /folders/:id.
func (h *FolderHandler) UpdateFolder(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "FolderHandler.UpdateFolder"))
	log.Debug(reqCtx, "handling update folder request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid folder id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid folder id")
	}

	var req NameRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, "invalid request body", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	folder, err := h.folderService.UpdateFolder(reqCtx, id, req.Name)
	if err != nil {
		log.Debug(reqCtx, "failed to update folder", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, folder)
}

// DeleteFolder handles DELETE /folders/:id, answering 204 even for missing
// ids.
func (h *FolderHandler) DeleteFolder(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "FolderHandler.DeleteFolder"))
	log.Debug(reqCtx, "handling delete folder request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid folder id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid folder id")
	}

	if err := h.folderService.DeleteFolder(reqCtx, id); err != nil {
		log.Error(reqCtx, "failed to delete folder", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
