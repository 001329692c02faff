package scheduler

import (
	"time"

	"github.com/rafaelGenish111/leah-genish-api/models"
	"github.com/rafaelGenish111/leah-genish-api/utils"
)

// SameDayBufferMinutes is how far ahead of the current time a same-day slot
// must start to remain bookable.
const SameDayBufferMinutes = 30

// Slot is a bookable start time, "HH:MM" in the clinic's timezone. Slots are
// computed fresh on every query and never persisted.
type Slot struct {
	Time string `json:"time"`
}

// BookedRange is an occupied interval on the requested date, in minutes since
// midnight.
type BookedRange struct {
	Start int
	End   int
}

// BookedRangesFor converts the non-cancelled appointments of a single day
// into minute ranges relative to that day's midnight.
func BookedRangesFor(appointments []models.Appointment) []BookedRange {
	ranges := make([]BookedRange, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.Occupies() {
			continue
		}
		start := utils.ToClinicTime(appt.StartTime)
		startMin := start.Hour()*60 + start.Minute()
		endMin := startMin + int(appt.EndTime.Sub(appt.StartTime).Minutes())
		ranges = append(ranges, BookedRange{Start: startMin, End: endMin})
	}
	return ranges
}

// ResolveSlots computes the bookable start times for one date and service.
//
// The working window comes from the date exception when one exists
// (unavailable closes the day, custom_hours replaces the weekly hours and
// drops the weekly breaks), otherwise from the weekly availability record for
// that weekday. Candidates step through the window on the service's slot
// grid; a candidate survives if its half-open interval fits the window and
// intersects no break and no booked range. On the current date, candidates
// starting before now plus SameDayBufferMinutes are dropped; past dates yield
// nothing.
func ResolveSlots(
	date time.Time,
	service models.Service,
	weekly *models.WeeklyAvailability,
	exception *models.DateException,
	booked []BookedRange,
	now time.Time,
) ([]Slot, error) {
	duration := service.Duration.TotalMinutes()
	if duration <= 0 {
		return []Slot{}, nil
	}

	windowStart, windowEnd, breaks, ok, err := workingWindow(weekly, exception)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Slot{}, nil
	}

	cutoff := sameDayCutoff(date, now)
	if cutoff < 0 {
		return []Slot{}, nil
	}

	step := service.Granularity()
	if step <= 0 {
		step = duration
	}

	slots := []Slot{}
	for t := windowStart; t+duration <= windowEnd; t += step {
		if t < cutoff {
			continue
		}
		if intersectsAny(t, t+duration, breaks) {
			continue
		}
		if intersectsBooked(t, t+duration, booked) {
			continue
		}
		slots = append(slots, Slot{Time: utils.FormatClock(t)})
	}
	return slots, nil
}

// workingWindow resolves the day's hours. ok is false when the day is closed.
func workingWindow(weekly *models.WeeklyAvailability, exception *models.DateException) (start, end int, breaks []models.TimeRange, ok bool, err error) {
	if exception != nil {
		if exception.Type == models.ExceptionUnavailable {
			return 0, 0, nil, false, nil
		}
		start, err = utils.ParseClock(exception.StartTime)
		if err != nil {
			return 0, 0, nil, false, err
		}
		end, err = utils.ParseClock(exception.EndTime)
		if err != nil {
			return 0, 0, nil, false, err
		}
		return start, end, nil, start < end, nil
	}

	if weekly == nil || !weekly.IsActive {
		return 0, 0, nil, false, nil
	}
	start, err = utils.ParseClock(weekly.StartTime)
	if err != nil {
		return 0, 0, nil, false, err
	}
	end, err = utils.ParseClock(weekly.EndTime)
	if err != nil {
		return 0, 0, nil, false, err
	}
	return start, end, weekly.BreakTimes, start < end, nil
}

// sameDayCutoff returns the earliest allowed candidate in minutes since the
// date's midnight: negative when the whole date has passed, zero for future
// dates, now+buffer for the current date.
func sameDayCutoff(date, now time.Time) int {
	dayStart, dayEnd := utils.DayBounds(date)
	localNow := utils.ToClinicTime(now)
	if !localNow.Before(dayEnd) {
		return -1
	}
	if localNow.Before(dayStart) {
		return 0
	}
	return localNow.Hour()*60 + localNow.Minute() + SameDayBufferMinutes
}

// intersectsAny tests [start, end) against break ranges with half-open
// semantics: touching boundaries do not conflict.
func intersectsAny(start, end int, breaks []models.TimeRange) bool {
	for _, br := range breaks {
		bs, err := utils.ParseClock(br.StartTime)
		if err != nil {
			continue
		}
		be, err := utils.ParseClock(br.EndTime)
		if err != nil {
			continue
		}
		if start < be && end > bs {
			return true
		}
	}
	return false
}

func intersectsBooked(start, end int, booked []BookedRange) bool {
	for _, b := range booked {
		if start < b.End && end > b.Start {
			return true
		}
	}
	return false
}
