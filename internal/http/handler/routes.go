package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when the document store is remote; /health then reports healthy without a ping.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())

	app.Get("/categories", ListCategories(docSvc))

	docs := app.Group("/documents")
	docs.Post("/search", SearchDocuments(docSvc))
	docs.Post("/", UploadDocument(docSvc))
	docs.Get("/tags", TagSuggestions(docSvc))
	docs.Post("/preview", PreviewDocument(docSvc))
	docs.Post("/download", DownloadDocument(docSvc))
}
