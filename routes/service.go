package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/controllers"
	"github.com/rafaelGenish111/leah-genish-api/controllers/admin"
	"github.com/rafaelGenish111/leah-genish-api/middleware"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/api/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)

	adminService := app.Group("/api/admin/services", middleware.Protected(), middleware.RequireRole("admin"))
	adminService.Get("/", admin.GetAllServices)
	adminService.Post("/", admin.CreateService)
	adminService.Put("/:id", admin.UpdateService)
	adminService.Delete("/:id", admin.DeleteService)
}
