package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/api"
	"notekeeper/pkg/logger"
)

// NoteRequest is the writable note payload accepted by create and update.
type NoteRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	FolderID *int64  `json:"folder_id"`
	Tags     []int64 `json:"tags"`
}

func (r *NoteRequest) draft() *entities.NoteDraft {
	return &entities.NoteDraft{
		Title:    r.Title,
		Content:  r.Content,
		FolderID: r.FolderID,
		TagIDs:   r.Tags,
	}
}

// NoteHandler handles the /notes routes.
type NoteHandler struct {
	noteService api.NoteService
}

// NewNoteHandler creates a new note handler.
func NewNoteHandler(noteService api.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// ListNotes handles GET /notes with optional searchTerm, folderId and tagId
// filters.
func (h *NoteHandler) ListNotes(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "NoteHandler.ListNotes"))
	log.Debug(reqCtx, "handling list notes request")

	filter := entities.NoteFilter{SearchTerm: ctx.Query("searchTerm")}

	if raw := ctx.Query("folderId"); raw != "" {
		folderID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Debug(reqCtx, "invalid folderId filter", zap.Error(err))
			return respondMessage(ctx, fiber.StatusBadRequest, "invalid `folderId` query parameter")
		}
		filter.FolderID = &folderID
	}
	if raw := ctx.Query("tagId"); raw != "" {
		tagID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Debug(reqCtx, "invalid tagId filter", zap.Error(err))
			return respondMessage(ctx, fiber.StatusBadRequest, "invalid `tagId` query parameter")
		}
		filter.TagID = &tagID
	}

	notes, err := h.noteService.ListNotes(reqCtx, filter)
	if err != nil {
		log.Error(reqCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, notes)
}

// GetNote handles GET /notes/:id.
func (h *NoteHandler) GetNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "NoteHandler.GetNote"))
	log.Debug(reqCtx, "handling get note request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid note id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid note id")
	}

	note, err := h.noteService.GetNote(reqCtx, id)
	if err != nil {
		log.Debug(reqCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, note)
}

// CreateNote handles POST /notes, answering 201 with a Location header.
func (h *NoteHandler) CreateNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "NoteHandler.CreateNote"))
	log.Debug(reqCtx, "handling create note request")

	var req NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, "invalid request body", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	note, err := h.noteService.CreateNote(reqCtx, req.draft())
	if err != nil {
		log.Error(reqCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	ctx.Location(fmt.Sprintf("%s/%d", ctx.Path(), note.ID))
	return respondJSON(ctx, fiber.StatusCreated, note)
}

// UpdateNote handles PUT /notes/:id.
func (h *NoteHandler) UpdateNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "NoteHandler.UpdateNote"))
	log.Debug(reqCtx, "handling update note request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid note id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid note id")
	}

	var req NoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(reqCtx, "invalid request body", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	note, err := h.noteService.UpdateNote(reqCtx, id, req.draft())
	if err != nil {
		log.Debug(reqCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	return respondJSON(ctx, fiber.StatusOK, note)
}

// DeleteNote handles DELETE /notes/:id, answering 204 even for missing ids.
func (h *NoteHandler) DeleteNote(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "NoteHandler.DeleteNote"))
	log.Debug(reqCtx, "handling delete note request")

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		log.Debug(reqCtx, "invalid note id", zap.Error(err))
		return respondMessage(ctx, fiber.StatusBadRequest, "invalid note id")
	}

	if err := h.noteService.DeleteNote(reqCtx, id); err != nil {
		log.Error(reqCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
