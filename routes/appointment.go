package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/controllers"
	"github.com/rafaelGenish111/leah-genish-api/controllers/admin"
	"github.com/rafaelGenish111/leah-genish-api/middleware"
)

// SetupAppointmentRoutes configures the public booking route and the admin
// appointment management routes
func SetupAppointmentRoutes(app *fiber.App) {
	// Public booking
	app.Post("/api/appointments", controllers.CreateAppointment)

	// Back office
	appointments := app.Group("/api/admin/appointments", middleware.Protected(), middleware.RequireRole("admin"))
	appointments.Get("/", admin.GetAllAppointments)
	appointments.Get("/:id", admin.GetAppointment)
	appointments.Post("/", admin.CreateAppointment)
	appointments.Patch("/:id/status", admin.UpdateAppointmentStatus)
	appointments.Delete("/:id", admin.DeleteAppointment)
}
