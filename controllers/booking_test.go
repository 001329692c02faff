package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafaelGenish111/leah-genish-api/db"
	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

var testDBCounter int64

// setupTestApp wires the public booking handlers onto a fiber app backed by
// a fresh in-memory database.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(
		&models.Service{},
		&models.Appointment{},
		&models.WeeklyAvailability{},
		&models.DateException{},
	))
	db.DB = gormDB

	app := fiber.New()
	app.Get("/api/availability/slots", GetAvailableSlots)
	app.Post("/api/appointments", CreateAppointment)
	return app
}

// bookingDate is far enough ahead that the same-day cutoff never interferes.
const bookingDate = "2031-06-10"

func seedSchedule(t *testing.T, breaks ...models.TimeRange) models.Service {
	t.Helper()

	service := models.Service{
		NameHe:   "רפלקסולוגיה",
		NameEn:   "Reflexology",
		Duration: models.Duration{Hours: 1},
		Active:   true,
	}
	require.NoError(t, db.DB.Create(&service).Error)

	date, err := utils.ParseDate(bookingDate)
	require.NoError(t, err)
	weekly := models.WeeklyAvailability{
		DayOfWeek:  models.DayOfWeek(date.Weekday()),
		StartTime:  "09:00",
		EndTime:    "17:00",
		IsActive:   true,
		BreakTimes: breaks,
	}
	require.NoError(t, db.DB.Create(&weekly).Error)

	return service
}

func getSlots(t *testing.T, app *fiber.App, serviceID uint) []string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/availability/slots?date=%s&serviceId=%d", bookingDate, serviceID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		AvailableSlots []struct {
			Time string `json:"time"`
		} `json:"availableSlots"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	slots := make([]string, 0, len(body.AvailableSlots))
	for _, s := range body.AvailableSlots {
		slots = append(slots, s.Time)
	}
	return slots
}

func postBooking(t *testing.T, app *fiber.App, serviceID uint, timeOfDay string) *http.Response {
	t.Helper()

	payload, err := json.Marshal(BookingRequest{
		ServiceID:   serviceID,
		Date:        bookingDate,
		Time:        timeOfDay,
		ClientName:  "Dana Levi",
		ClientEmail: "dana@example.com",
		ClientPhone: "050-0000000",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGetAvailableSlots(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t, models.TimeRange{StartTime: "13:00", EndTime: "14:00"})

	slots := getSlots(t, app, service.ID)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00"}, slots)
}

func TestGetAvailableSlots_BadDate(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/availability/slots?date=junk&serviceId=%d", service.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAvailableSlots_MissingServiceParam(t *testing.T) {
	app := setupTestApp(t)
	seedSchedule(t)

	req := httptest.NewRequest(http.MethodGet, "/api/availability/slots?date="+bookingDate, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAvailableSlots_UnknownService(t *testing.T) {
	app := setupTestApp(t)
	seedSchedule(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/availability/slots?date="+bookingDate+"&serviceId=9999", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAvailableSlots_InactiveService(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)
	require.NoError(t, db.DB.Model(&models.Service{}).Where("id = ?", service.ID).Update("active", false).Error)

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/availability/slots?date=%s&serviceId=%d", bookingDate, service.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAppointment_BooksAndRemovesSlot(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)

	resp := postBooking(t, app, service.ID, "10:00")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Appointment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "Dana Levi", created.ClientName)

	slots := getSlots(t, app, service.ID)
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
}

func TestCreateAppointment_SecondBookingConflicts(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)

	first := postBooking(t, app, service.ID, "10:00")
	assert.Equal(t, http.StatusCreated, first.StatusCode)

	second := postBooking(t, app, service.ID, "10:00")
	assert.Equal(t, http.StatusConflict, second.StatusCode)

	var count int64
	require.NoError(t, db.DB.Model(&models.Appointment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateAppointment_CancellationFreesSlot(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)

	resp := postBooking(t, app, service.ID, "10:00")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var appt models.Appointment
	require.NoError(t, db.DB.First(&appt).Error)
	require.NoError(t, appt.UpdateStatus(db.DB, models.StatusCancelled))

	slots := getSlots(t, app, service.ID)
	assert.Contains(t, slots, "10:00")

	rebook := postBooking(t, app, service.ID, "10:00")
	assert.Equal(t, http.StatusCreated, rebook.StatusCode)
}

func TestCreateAppointment_OutsideWorkingHoursConflicts(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)

	resp := postBooking(t, app, service.ID, "07:00")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateAppointment_UnavailableExceptionBlocksBooking(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)

	date, err := utils.ParseDate(bookingDate)
	require.NoError(t, err)
	require.NoError(t, db.DB.Create(&models.DateException{
		Date:   date,
		Type:   models.ExceptionUnavailable,
		Reason: "holiday",
	}).Error)

	slots := getSlots(t, app, service.ID)
	assert.Empty(t, slots)

	resp := postBooking(t, app, service.ID, "10:00")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	app := setupTestApp(t)
	seedSchedule(t)

	resp := postBooking(t, app, 9999, "10:00")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAppointment_MissingClientDetails(t *testing.T) {
	app := setupTestApp(t)
	service := seedSchedule(t)

	payload, err := json.Marshal(BookingRequest{
		ServiceID: service.ID,
		Date:      bookingDate,
		Time:      "10:00",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
