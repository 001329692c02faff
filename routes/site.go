package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/controllers"
	"github.com/rafaelGenish111/leah-genish-api/controllers/admin"
	"github.com/rafaelGenish111/leah-genish-api/middleware"
)

// SetupSiteRoutes configures the contact form, health declarations, site
// settings and the admin dashboard
func SetupSiteRoutes(app *fiber.App) {
	// Public forms and settings
	app.Post("/api/contact", controllers.SubmitContactMessage)
	app.Post("/api/health-declarations", controllers.SubmitHealthDeclaration)
	app.Get("/api/settings", controllers.GetSiteSettings)

	adminGroup := app.Group("/api/admin", middleware.Protected(), middleware.RequireRole("admin"))

	adminGroup.Get("/dashboard", admin.GetDashboardOverview)

	adminGroup.Get("/settings", admin.GetSiteSettings)
	adminGroup.Put("/settings", admin.UpdateSiteSettings)

	adminGroup.Get("/contact", admin.GetContactMessages)
	adminGroup.Patch("/contact/:id/read", admin.MarkContactMessageRead)
	adminGroup.Delete("/contact/:id", admin.DeleteContactMessage)

	adminGroup.Get("/health-declarations", admin.GetHealthDeclarations)
	adminGroup.Get("/health-declarations/:id", admin.GetHealthDeclaration)
	adminGroup.Patch("/health-declarations/:id/reviewed", admin.MarkHealthDeclarationReviewed)
	adminGroup.Delete("/health-declarations/:id", admin.DeleteHealthDeclaration)
}
