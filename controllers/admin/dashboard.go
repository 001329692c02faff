package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// GetDashboardOverview returns appointment counts, pending content work and
// the next upcoming appointments for the back-office landing page.
func GetDashboardOverview(c *fiber.Ctx) error {
	var statistics struct {
		TotalAppointments int64     `json:"total_appointments"`
		PendingCount      int64     `json:"pending_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		CancelledCount    int64     `json:"cancelled_count"`
		TodayCount        int64     `json:"today_count"`
		UnreadMessages    int64     `json:"unread_messages"`
		UnreviewedHealth  int64     `json:"unreviewed_health_declarations"`
		ActiveServices    int64     `json:"active_services"`
		PublishedArticles int64     `json:"published_articles"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.Appointment{}).Count(&statistics.TotalAppointments)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusCancelled).Count(&statistics.CancelledCount)

	dayStart, dayEnd := utils.DayBounds(time.Now())
	db.DB.Model(&models.Appointment{}).
		Where("status <> ?", models.StatusCancelled).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Count(&statistics.TodayCount)

	db.DB.Model(&models.ContactMessage{}).Where("read = ?", false).Count(&statistics.UnreadMessages)
	db.DB.Model(&models.HealthDeclaration{}).Where("reviewed = ?", false).Count(&statistics.UnreviewedHealth)
	db.DB.Model(&models.Service{}).Where("active = ?", true).Count(&statistics.ActiveServices)
	db.DB.Model(&models.Article{}).Where("published = ?", true).Count(&statistics.PublishedArticles)

	statistics.LastUpdated = time.Now()

	var upcoming []models.Appointment
	db.DB.Preload("Service").
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Where("start_time >= ?", time.Now()).
		Order("start_time").
		Limit(10).
		Find(&upcoming)

	return c.JSON(fiber.Map{
		"statistics": statistics,
		"upcoming":   upcoming,
	})
}
