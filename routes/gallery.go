package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/controllers"
	"github.com/rafaelGenish111/leah-genish-api/controllers/admin"
	"github.com/rafaelGenish111/leah-genish-api/middleware"
)

// SetupGalleryRoutes configures the public gallery and the admin CRUD
func SetupGalleryRoutes(app *fiber.App) {
	app.Get("/api/gallery", controllers.GetGalleryImages)

	adminGallery := app.Group("/api/admin/gallery", middleware.Protected(), middleware.RequireRole("admin"))
	adminGallery.Get("/", admin.GetGalleryImages)
	adminGallery.Post("/", admin.CreateGalleryImage)
	adminGallery.Put("/:id", admin.UpdateGalleryImage)
	adminGallery.Delete("/:id", admin.DeleteGalleryImage)
}
