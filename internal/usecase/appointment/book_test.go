package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

func TestBookAppointment(t *testing.T) {
	env := newTestEnv(t)

	ap := env.book(t, futureDate(), "10:00 AM")

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Nil(t, ap.WorkerID, "a new booking has no worker yet")
	assert.Equal(t, "10:00 AM", ap.TimeSlot)

	// service snapshot taken at booking time
	assert.Equal(t, "Classic Manicure", ap.ServiceName)
	assert.Equal(t, 35.0, ap.ServicePrice)
	assert.Equal(t, 35.0, ap.TotalAmount)
}

func TestBookSnapshotSurvivesPriceChange(t *testing.T) {
	env := newTestEnv(t)

	ap := env.book(t, futureDate(), "10:00 AM")

	require.NoError(t, env.db.Model(&models.Service{}).
		Where("id = ?", env.service.ID).
		Update("price", 99).Error)

	got := env.reload(t, ap.ID)
	assert.Equal(t, 35.0, got.ServicePrice)
	assert.Equal(t, 35.0, got.TotalAmount)
}

func TestBookSameSlotPendingTwiceIsAllowed(t *testing.T) {
	env := newTestEnv(t)
	date := futureDate()

	// two clients may request the same slot; only a claim locks it
	env.book(t, date, "10:00 AM")
	env.book(t, date, "10:00 AM")

	var count int64
	env.db.Model(&models.Appointment{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestBookConfirmedSlotIsTaken(t *testing.T) {
	env := newTestEnv(t)
	date := futureDate()

	first := env.book(t, date, "10:00 AM")
	env.claim(t, first.ID, env.worker.ID)

	uc := NewBookAppointment(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  env.client.ID,
		ServiceID: env.service.ID,
		Date:      date,
		TimeSlot:  "10:00 AM",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// the neighbouring slot is still free
	env.book(t, date, "10:30 AM")
}

func TestBookRejectsOffGridSlot(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookAppointment(env.repo, env.audit, env.feed)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  env.client.ID,
		ServiceID: env.service.ID,
		Date:      futureDate(),
		TimeSlot:  "10:10 AM",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"))

	_, err = uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  env.client.ID,
		ServiceID: env.service.ID,
		Date:      futureDate(),
		TimeSlot:  "08:00 PM",
	})
	assert.True(t, httperr.IsBusiness(err, "outside_booking_hours"))
}

func TestBookRejectsPastSlot(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookAppointment(env.repo, env.audit, env.feed)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  env.client.ID,
		ServiceID: env.service.ID,
		Date:      "2020-01-01",
		TimeSlot:  "10:00 AM",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_in_past"))
}

func TestBookRejectsInvalidDate(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookAppointment(env.repo, env.audit, env.feed)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  env.client.ID,
		ServiceID: env.service.ID,
		Date:      "14/07/2026",
		TimeSlot:  "10:00 AM",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestBookRejectsInactiveClient(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", env.client.ID).
		Update("active", false).Error)

	uc := NewBookAppointment(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  env.client.ID,
		ServiceID: env.service.ID,
		Date:      futureDate(),
		TimeSlot:  "10:00 AM",
	})
	assert.True(t, httperr.IsBusiness(err, "account_inactive"))
}

func TestBookRejectsInactiveService(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.db.Model(&models.Service{}).
		Where("id = ?", env.service.ID).
		Update("active", false).Error)

	uc := NewBookAppointment(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  env.client.ID,
		ServiceID: env.service.ID,
		Date:      futureDate(),
		TimeSlot:  "10:00 AM",
	})
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}
