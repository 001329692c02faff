package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/controllers"
	"github.com/rafaelGenish111/leah-genish-api/controllers/admin"
	"github.com/rafaelGenish111/leah-genish-api/middleware"
)

// SetupAvailabilityRoutes configures the public slot query and the admin
// schedule management routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/api/availability")

	// Public slot resolution
	availability.Get("/slots", controllers.GetAvailableSlots)

	// Date exceptions (admin)
	availability.Get("/exceptions", middleware.Protected(), middleware.RequireRole("admin"), admin.GetDateExceptions)
	availability.Post("/exceptions", middleware.Protected(), middleware.RequireRole("admin"), admin.CreateDateException)
	availability.Put("/exceptions/:id", middleware.Protected(), middleware.RequireRole("admin"), admin.UpdateDateException)
	availability.Delete("/exceptions/:id", middleware.Protected(), middleware.RequireRole("admin"), admin.DeleteDateException)

	// Weekly hours (admin)
	availability.Get("/", middleware.Protected(), middleware.RequireRole("admin"), admin.GetWeeklyAvailability)
	availability.Post("/", middleware.Protected(), middleware.RequireRole("admin"), admin.CreateWeeklyAvailability)
	availability.Put("/:id", middleware.Protected(), middleware.RequireRole("admin"), admin.UpdateWeeklyAvailability)
	availability.Delete("/:id", middleware.Protected(), middleware.RequireRole("admin"), admin.DeleteWeeklyAvailability)
}
