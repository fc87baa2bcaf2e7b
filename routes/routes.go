package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mark-25-git/business-documents-tool/controllers"
	"github.com/mark-25-git/business-documents-tool/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then the per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.Tx())

	// Customers
	protected.Post("/customer", controllers.CreateCustomer)
	protected.Get("/customers", controllers.GetCustomers)
	protected.Get("/customer/:id", controllers.GetCustomer)
	protected.Put("/customer/:id", controllers.UpdateCustomer)

	// Documents
	protected.Post("/document", controllers.CreateDocument)
	protected.Get("/documents", controllers.GetDocuments)
	protected.Get("/document/:id", controllers.GetDocument)
	protected.Put("/document/:id", controllers.UpdateDocument)
	protected.Delete("/document/:id", controllers.DeleteDocument)
	protected.Get("/document/:id/pdf", controllers.GetDocumentPDF)

	// Line-item autocomplete
	protected.Get("/items/suggestions", controllers.GetItemSuggestions)

	// Company profile (PDF header)
	protected.Get("/company", controllers.GetCompanyProfile)
	protected.Put("/company", controllers.UpdateCompanyProfile)
}
