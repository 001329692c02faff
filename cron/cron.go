package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// StartCronJobs initializes the scheduler for appointment reminders and the
// nightly cleanup of past appointments
func StartCronJobs() {
	c := cron.New()

	// Hourly: remind clients about tomorrow's confirmed appointments
	if _, err := c.AddFunc("0 * * * *", sendAppointmentReminders); err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}

	// Nightly: confirmed appointments whose end time has passed are completed
	if _, err := c.AddFunc("30 0 * * *", completePastAppointments); err != nil {
		log.Fatalf("Failed to add completion cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// sendAppointmentReminders emails clients whose confirmed appointment starts
// in roughly 24 hours. The window matches the hourly schedule so each
// appointment is picked up exactly once.
func sendAppointmentReminders() {
	now := time.Now()
	startWindow := now.Add(24 * time.Hour)
	endWindow := now.Add(25 * time.Hour)

	var appointments []models.Appointment
	err := db.DB.Preload("Service").
		Where("status = ? AND start_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.ClientEmail == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.ClientEmail)
	}
}

// completePastAppointments marks confirmed appointments whose end time has
// passed as completed
func completePastAppointments() {
	result := db.DB.Model(&models.Appointment{}).
		Where("status = ? AND end_time < ?", models.StatusConfirmed, time.Now()).
		Update("status", models.StatusCompleted)
	if result.Error != nil {
		log.Printf("Error completing past appointments: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d past appointments as completed", result.RowsAffected)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	start := utils.ToClinicTime(appointment.StartTime)
	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Treatment:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Leah Genish - Complementary Medicine</p>
	`, appointment.ClientName, appointment.Service.NameEn,
		start.Format("2006-01-02"), start.Format("15:04"))

	return utils.SendEmail(appointment.ClientEmail, subject, body)
}
