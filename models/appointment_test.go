package models

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// testDB opens a fresh in-memory database for one test. The named DSN keeps
// every pooled connection on the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:models_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Service{}, &Appointment{}))
	return db
}

func newAppointment(start time.Time, status AppointmentStatus) Appointment {
	return Appointment{
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      status,
		ClientName:  "Test Client",
		ClientEmail: "client@example.com",
	}
}

func TestAppointment_DefaultStatusOnCreate(t *testing.T) {
	db := testDB(t)
	appt := newAppointment(time.Date(2031, time.June, 10, 10, 0, 0, 0, time.UTC), "")
	require.NoError(t, db.Create(&appt).Error)
	assert.Equal(t, StatusPending, appt.Status)
}

func TestAppointment_StatusTransitions(t *testing.T) {
	db := testDB(t)
	appt := newAppointment(time.Date(2031, time.June, 10, 10, 0, 0, 0, time.UTC), StatusPending)
	require.NoError(t, db.Create(&appt).Error)

	require.NoError(t, appt.UpdateStatus(db, StatusConfirmed))
	assert.Equal(t, StatusConfirmed, appt.Status)

	require.NoError(t, appt.UpdateStatus(db, StatusCompleted))
	assert.Equal(t, StatusCompleted, appt.Status)

	// Completed is terminal.
	assert.Error(t, appt.UpdateStatus(db, StatusCancelled))
}

func TestAppointment_InvalidTransitions(t *testing.T) {
	db := testDB(t)
	appt := newAppointment(time.Date(2031, time.June, 10, 10, 0, 0, 0, time.UTC), StatusPending)
	require.NoError(t, db.Create(&appt).Error)

	// Pending cannot jump straight to completed.
	assert.Error(t, appt.UpdateStatus(db, StatusCompleted))

	require.NoError(t, appt.UpdateStatus(db, StatusCancelled))
	assert.Error(t, appt.UpdateStatus(db, StatusConfirmed))
}

func TestAppointment_Occupies(t *testing.T) {
	appt := newAppointment(time.Now(), StatusConfirmed)
	assert.True(t, appt.Occupies())

	appt.Status = StatusCancelled
	assert.False(t, appt.Occupies())
}

func TestAppointment_UniqueSlotIndex(t *testing.T) {
	db := testDB(t)
	start := time.Date(2031, time.June, 10, 10, 0, 0, 0, time.UTC)

	first := newAppointment(start, StatusPending)
	require.NoError(t, db.Create(&first).Error)

	second := newAppointment(start, StatusPending)
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Cancelling the first booking frees the slot for a new one.
	require.NoError(t, first.UpdateStatus(db, StatusCancelled))
	third := newAppointment(start, StatusPending)
	assert.NoError(t, db.Create(&third).Error)
}
