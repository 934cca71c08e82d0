package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

func TestDefaultGridSlots(t *testing.T) {
	slots := DefaultGrid().Slots()

	// 09:00 to 17:00 in 30 minute steps
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00 AM", slots[0])
	assert.Equal(t, "12:30 PM", slots[7])
	assert.Equal(t, "04:30 PM", slots[15])
}

func TestGridFromSalon(t *testing.T) {
	g := GridFromSalon(&models.Salon{
		OpenTime:    "10:00",
		CloseTime:   "14:00",
		SlotMinutes: 60,
	})

	slots := g.Slots()
	require.Len(t, slots, 4)
	assert.Equal(t, "10:00 AM", slots[0])
	assert.Equal(t, "01:00 PM", slots[3])
}

func TestGridFromSalonFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, DefaultGrid(), GridFromSalon(nil))
	assert.Equal(t, DefaultGrid(), GridFromSalon(&models.Salon{}))
}

func TestNormalize(t *testing.T) {
	g := DefaultGrid()

	slot, err := g.Normalize("09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", slot)

	slot, err = g.Normalize("02:30 PM")
	require.NoError(t, err)
	assert.Equal(t, "02:30 PM", slot)

	_, err = g.Normalize("9am")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"))

	// on the half hour grid but off the step
	_, err = g.Normalize("09:15 AM")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"))

	_, err = g.Normalize("08:00 AM")
	assert.True(t, httperr.IsBusiness(err, "outside_booking_hours"))

	// closing time itself is not bookable
	_, err = g.Normalize("05:00 PM")
	assert.True(t, httperr.IsBusiness(err, "outside_booking_hours"))

	// last slot of the day is
	_, err = g.Normalize("04:30 PM")
	assert.NoError(t, err)
}

func TestStartAt(t *testing.T) {
	g := DefaultGrid()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	date := time.Date(2026, 7, 14, 0, 0, 0, 0, loc)

	start, err := g.StartAt(date, "02:30 PM", loc)
	require.NoError(t, err)

	assert.Equal(t, 14, start.Hour())
	assert.Equal(t, 30, start.Minute())
	assert.Equal(t, date.Day(), start.Day())
	assert.Equal(t, loc, start.Location())
}
