package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
)

func TestAvailabilityForOpenDay(t *testing.T) {
	env := newTestEnv(t)

	uc := NewGetAvailability(env.repo)
	slots, err := uc.Execute(context.Background(), futureDate())
	require.NoError(t, err)

	// full 09:00-17:00 grid at 30 minutes
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00 AM", slots[0].Label)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "09:30", slots[0].End)
}

func TestAvailabilityHidesConfirmedSlots(t *testing.T) {
	env := newTestEnv(t)
	date := futureDate()

	ap := env.book(t, date, "10:00 AM")
	env.claim(t, ap.ID, env.worker.ID)

	uc := NewGetAvailability(env.repo)
	slots, err := uc.Execute(context.Background(), date)
	require.NoError(t, err)

	require.Len(t, slots, 15)
	for _, s := range slots {
		assert.NotEqual(t, "10:00 AM", s.Label)
	}
}

func TestAvailabilityIgnoresPendingBookings(t *testing.T) {
	env := newTestEnv(t)
	date := futureDate()

	// an unclaimed request does not hold the slot
	env.book(t, date, "10:00 AM")

	uc := NewGetAvailability(env.repo)
	slots, err := uc.Execute(context.Background(), date)
	require.NoError(t, err)
	assert.Len(t, slots, 16)
}

func TestAvailabilityForPastDate(t *testing.T) {
	env := newTestEnv(t)

	uc := NewGetAvailability(env.repo)
	slots, err := uc.Execute(context.Background(), "2020-01-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailabilityInvalidDate(t *testing.T) {
	env := newTestEnv(t)

	uc := NewGetAvailability(env.repo)
	_, err := uc.Execute(context.Background(), "not-a-date")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
