package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, min)

	min, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	min, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, min)
}

func TestParseClock_Invalid(t *testing.T) {
	for _, input := range []string{"", "25:00", "12:60", "noon", "12-30"} {
		_, err := ParseClock(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(9*60+5))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "16:30", FormatClock(16*60+30))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2031-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2031, date.Year())
	assert.Equal(t, time.June, date.Month())
	assert.Equal(t, 10, date.Day())
	assert.Equal(t, ClinicLocation().String(), date.Location().String())

	_, err = ParseDate("10/06/2031")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	mid := time.Date(2031, time.June, 10, 15, 42, 0, 0, ClinicLocation())
	start, end := DayBounds(mid)
	assert.Equal(t, time.Date(2031, time.June, 10, 0, 0, 0, 0, ClinicLocation()), start)
	assert.Equal(t, time.Date(2031, time.June, 11, 0, 0, 0, 0, ClinicLocation()), end)
}
