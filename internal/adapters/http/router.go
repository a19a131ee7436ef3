// Package http wires the fiber application: middleware and routes.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeeper/internal/adapters/http/handlers"
	"notekeeper/internal/adapters/http/middleware"
	"notekeeper/internal/ports/api"
)

// SetupRouter registers middleware and all entity routes on the app.
func SetupRouter(app *fiber.App, noteService api.NoteService, folderService api.FolderService, tagService api.TagService) {
	noteHandler := handlers.NewNoteHandler(noteService)
	folderHandler := handlers.NewFolderHandler(folderService)
	tagHandler := handlers.NewTagHandler(tagService)

	app.Use(middleware.NewRequestContextMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiV1 := app.Group("/api/v1")

	noteRoutes := apiV1.Group("/notes")
	noteRoutes.Get("/", noteHandler.ListNotes)
	noteRoutes.Get("/:id", noteHandler.GetNote)
	noteRoutes.Post("/", noteHandler.CreateNote)
	noteRoutes.Put("/:id", noteHandler.UpdateNote)
	noteRoutes.Delete("/:id", noteHandler.DeleteNote)

	folderRoutes := apiV1.Group("/folders")
	folderRoutes.Get("/", folderHandler.ListFolders)
	folderRoutes.Get("/:id", folderHandler.GetFolder)
	folderRoutes.Post("/", folderHandler.CreateFolder)
	folderRoutes.Put("/:id", folderHandler.UpdateFolder)
	folderRoutes.Delete("/:id", folderHandler.DeleteFolder)

	tagRoutes := apiV1.Group("/tags")
	tagRoutes.Get("/", tagHandler.ListTags)
	tagRoutes.Get("/:id", tagHandler.GetTag)
	tagRoutes.Post("/", tagHandler.CreateTag)
	tagRoutes.Put("/:id", tagHandler.UpdateTag)
	tagRoutes.Delete("/:id", tagHandler.DeleteTag)

	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "route not found",
		})
	})
}
