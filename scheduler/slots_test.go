package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

func clinicDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, utils.ClinicLocation())
}

func clinicTime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, utils.ClinicLocation())
}

func sixtyMinuteService() models.Service {
	return models.Service{Duration: models.Duration{Hours: 1}, Active: true}
}

func weekdayHours(start, end string, breaks ...models.TimeRange) *models.WeeklyAvailability {
	return &models.WeeklyAvailability{
		StartTime:  start,
		EndTime:    end,
		IsActive:   true,
		BreakTimes: breaks,
	}
}

// A distant future date so the same-day cutoff never interferes.
var testDate = clinicDate(2031, time.June, 10)

var farPast = clinicTime(2020, time.January, 1, 12, 0)

func times(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestResolveSlots_FullDay(t *testing.T) {
	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "17:00"), nil, nil, farPast)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, times(slots))
}

func TestResolveSlots_InactiveDayYieldsNothing(t *testing.T) {
	weekly := weekdayHours("09:00", "17:00")
	weekly.IsActive = false

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekly, nil, nil, farPast)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlots_MissingDayYieldsNothing(t *testing.T) {
	slots, err := ResolveSlots(testDate, sixtyMinuteService(), nil, nil, nil, farPast)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlots_UnavailableExceptionOverridesWeekly(t *testing.T) {
	exception := &models.DateException{Type: models.ExceptionUnavailable, Reason: "holiday"}

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "17:00"), exception, nil, farPast)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlots_CustomHoursReplaceWeeklyAndDropBreaks(t *testing.T) {
	weekly := weekdayHours("09:00", "17:00", models.TimeRange{StartTime: "13:00", EndTime: "14:00"})
	exception := &models.DateException{
		Type:      models.ExceptionCustomHours,
		StartTime: "12:00",
		EndTime:   "15:00",
	}

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekly, exception, nil, farPast)
	require.NoError(t, err)
	// The weekly break does not apply under custom hours.
	assert.Equal(t, []string{"12:00", "13:00", "14:00"}, times(slots))
}

func TestResolveSlots_BreakExcludesOverlappingCandidate(t *testing.T) {
	weekly := weekdayHours("09:00", "17:00", models.TimeRange{StartTime: "13:00", EndTime: "14:00"})

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekly, nil, nil, farPast)
	require.NoError(t, err)
	got := times(slots)
	assert.NotContains(t, got, "13:00")
	assert.Contains(t, got, "12:00")
	assert.Contains(t, got, "14:00")
}

func TestResolveSlots_TouchingBreakBoundaryIsNotExcluded(t *testing.T) {
	// Candidate 12:00-13:00 ends exactly where the break starts; candidate
	// 14:00-15:00 starts exactly where it ends. Half-open semantics keep both.
	weekly := weekdayHours("09:00", "17:00", models.TimeRange{StartTime: "13:00", EndTime: "14:00"})

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekly, nil, nil, farPast)
	require.NoError(t, err)
	got := times(slots)
	assert.Contains(t, got, "12:00")
	assert.Contains(t, got, "14:00")
}

func TestResolveSlots_BookedAppointmentExcludesSlot(t *testing.T) {
	booked := []BookedRange{{Start: 10 * 60, End: 11 * 60}}

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "17:00"), nil, booked, farPast)
	require.NoError(t, err)
	got := times(slots)
	assert.NotContains(t, got, "10:00")
	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "11:00")
}

func TestResolveSlots_CancelledAppointmentFreesSlot(t *testing.T) {
	start := clinicTime(2031, time.June, 10, 10, 0)
	appt := models.Appointment{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    models.StatusConfirmed,
	}

	booked := BookedRangesFor([]models.Appointment{appt})
	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "17:00"), nil, booked, farPast)
	require.NoError(t, err)
	assert.NotContains(t, times(slots), "10:00")

	appt.Status = models.StatusCancelled
	booked = BookedRangesFor([]models.Appointment{appt})
	slots, err = ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "17:00"), nil, booked, farPast)
	require.NoError(t, err)
	assert.Contains(t, times(slots), "10:00")
}

func TestResolveSlots_WindowShorterThanDuration(t *testing.T) {
	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "09:30"), nil, nil, farPast)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlots_PastDateYieldsNothing(t *testing.T) {
	now := clinicTime(2031, time.June, 11, 8, 0)

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "17:00"), nil, nil, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlots_SameDayCutoffWithBuffer(t *testing.T) {
	// At 11:45 the 12:00 slot is inside the 30 minute buffer; 13:00 is the
	// first bookable start.
	now := clinicTime(2031, time.June, 10, 11, 45)

	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("09:00", "17:00"), nil, nil, now)
	require.NoError(t, err)
	got := times(slots)
	assert.NotContains(t, got, "11:00")
	assert.NotContains(t, got, "12:00")
	assert.Contains(t, got, "13:00")
}

func TestResolveSlots_CustomGranularity(t *testing.T) {
	service := sixtyMinuteService()
	service.SlotGranularity = 30

	slots, err := ResolveSlots(testDate, service, weekdayHours("09:00", "11:00"), nil, nil, farPast)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, times(slots))
}

func TestResolveSlots_Idempotent(t *testing.T) {
	weekly := weekdayHours("09:00", "17:00", models.TimeRange{StartTime: "13:00", EndTime: "14:00"})
	booked := []BookedRange{{Start: 9 * 60, End: 10 * 60}}

	first, err := ResolveSlots(testDate, sixtyMinuteService(), weekly, nil, booked, farPast)
	require.NoError(t, err)
	second, err := ResolveSlots(testDate, sixtyMinuteService(), weekly, nil, booked, farPast)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveSlots_Ascending(t *testing.T) {
	slots, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("08:00", "20:00"), nil, nil, farPast)
	require.NoError(t, err)
	got := times(slots)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestResolveSlots_InvalidWeeklyClockFormat(t *testing.T) {
	_, err := ResolveSlots(testDate, sixtyMinuteService(), weekdayHours("nine", "17:00"), nil, nil, farPast)
	assert.Error(t, err)
}
