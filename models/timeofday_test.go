package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"-1:00", 0, true},
		{"0900", 0, true},
		{"nine", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(545).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "23:59", TimeOfDay(1439).String())
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	window := TimeWindow{Start: 540, End: 720}

	data, err := json.Marshal(window)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"09:00","end":"12:00"}`, string(data))

	var decoded TimeWindow
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, window, decoded)
}

func TestTimeWindowContainsAndOverlaps(t *testing.T) {
	w := TimeWindow{Start: 540, End: 720} // 09:00-12:00

	assert.True(t, w.Contains(540, 590))
	assert.True(t, w.Contains(660, 720))
	assert.False(t, w.Contains(530, 590))
	assert.False(t, w.Contains(700, 730))

	assert.True(t, w.Overlaps(TimeWindow{Start: 700, End: 800}))
	assert.False(t, w.Overlaps(TimeWindow{Start: 720, End: 800}), "half-open windows touching at the boundary do not overlap")
}

func TestAppointmentCountsForConflict(t *testing.T) {
	appt := Appointment{Start: 600, DurationMinutes: 50, Status: AppointmentScheduled}
	assert.Equal(t, TimeOfDay(650), appt.End())
	assert.True(t, appt.CountsForConflict())

	appt.Status = AppointmentCanceled
	assert.False(t, appt.CountsForConflict())

	appt.Status = AppointmentNoShow
	assert.True(t, appt.CountsForConflict())
}

func TestWeekdayOfDate(t *testing.T) {
	day, err := WeekdayOfDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = WeekdayOfDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, Saturday, day)

	_, err = WeekdayOfDate("not-a-date")
	assert.Error(t, err)
}
