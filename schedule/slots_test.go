package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

func slotStarts(slots []models.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.String()
	}
	return out
}

func TestGenerateSlotsFiftyMinuteSessions(t *testing.T) {
	// 09:00+50 fits, 10:00+50 fits, 11:00+50 ends exactly at 12:00 and
	// fits; a fourth slot would start past the window.
	slots := GenerateSlots(mustWindow(t, "09:00", "12:00"), 50, 10)

	require.Len(t, slots, 3)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStarts(slots))
	assert.Equal(t, "11:50", slots[2].End.String())
}

func TestGenerateSlotsTrailingBufferNotRequired(t *testing.T) {
	// The last slot ends exactly at window end; the buffer only spaces
	// slots from each other, it never pushes the final one out.
	slots := GenerateSlots(mustWindow(t, "09:00", "10:50"), 50, 10)

	assert.Equal(t, []string{"09:00", "10:00"}, slotStarts(slots))
	assert.Equal(t, "10:50", slots[1].End.String())
}

func TestGenerateSlotsDurationExceedsWindow(t *testing.T) {
	slots := GenerateSlots(mustWindow(t, "09:00", "09:30"), 45, 10)
	assert.Empty(t, slots)
}

func TestGenerateSlotsExactFit(t *testing.T) {
	slots := GenerateSlots(mustWindow(t, "09:00", "09:30"), 30, 10)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Start.String())
	assert.Equal(t, "09:30", slots[0].End.String())
}

func TestGenerateSlotsAlignedToWindowStartNotClockHour(t *testing.T) {
	slots := GenerateSlots(mustWindow(t, "09:10", "11:10"), 30, 15)
	assert.Equal(t, []string{"09:10", "09:55", "10:40"}, slotStarts(slots))
}

func TestGenerateSlotsZeroBuffer(t *testing.T) {
	slots := GenerateSlots(mustWindow(t, "09:00", "10:00"), 30, 0)
	assert.Equal(t, []string{"09:00", "09:30"}, slotStarts(slots))
}

func TestGenerateSlotsRejectsBadInputs(t *testing.T) {
	assert.Nil(t, GenerateSlots(mustWindow(t, "09:00", "10:00"), 0, 10))
	assert.Nil(t, GenerateSlots(mustWindow(t, "09:00", "10:00"), -5, 10))
	assert.Nil(t, GenerateSlots(mustWindow(t, "09:00", "10:00"), 30, -1))
	assert.Nil(t, GenerateSlots(models.TimeWindow{Start: 600, End: 540}, 30, 10))
}

func TestGenerateDaySlotsSpansWindows(t *testing.T) {
	day := models.EffectiveDaySchedule{
		Status: models.DayStandard,
		Windows: []models.TimeWindow{
			mustWindow(t, "09:00", "10:00"),
			mustWindow(t, "14:00", "15:30"),
		},
	}

	slots := GenerateDaySlots(day, 30, 10)

	assert.Equal(t, []string{"09:00", "14:00", "14:40"}, slotStarts(slots))
}

func TestGenerateDaySlotsBlockedDay(t *testing.T) {
	day := models.EffectiveDaySchedule{
		Status:  models.DayBlocked,
		Windows: []models.TimeWindow{mustWindow(t, "09:00", "12:00")},
	}
	assert.Nil(t, GenerateDaySlots(day, 30, 10))
}
