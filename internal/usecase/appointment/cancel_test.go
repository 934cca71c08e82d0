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

func TestClientCancelsOwnPendingAppointment(t *testing.T) {
	env := newTestEnv(t)
	ap := env.book(t, futureDate(), "10:00 AM")

	uc := NewCancelAppointment(env.repo, env.audit, env.feed)
	got, err := uc.Execute(context.Background(), ap.ID, env.client.ID, models.RoleClient)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	require.NotNil(t, got.CancelledAt)

	// cancellation keeps the record around
	stored := env.reload(t, ap.ID)
	assert.Equal(t, string(domain.StatusCancelled), stored.Status)
}

func TestClientCancelsConfirmedAppointment(t *testing.T) {
	env := newTestEnv(t)

	ap := env.book(t, futureDate(), "10:00 AM")
	env.claim(t, ap.ID, env.worker.ID)

	uc := NewCancelAppointment(env.repo, env.audit, env.feed)
	got, err := uc.Execute(context.Background(), ap.ID, env.client.ID, models.RoleClient)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), got.Status)
}

func TestClientCannotCancelSomeoneElses(t *testing.T) {
	env := newTestEnv(t)
	ap := env.book(t, futureDate(), "10:00 AM")

	other := models.User{Name: "Outra", Email: "outra@example.com", Role: models.RoleClient, Active: true}
	require.NoError(t, env.db.Create(&other).Error)

	uc := NewCancelAppointment(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), ap.ID, other.ID, models.RoleClient)
	assert.True(t, httperr.IsBusiness(err, "not_owner"))
}

func TestWorkerCancelRequiresHolding(t *testing.T) {
	env := newTestEnv(t)
	ap := env.book(t, futureDate(), "10:00 AM")

	uc := NewCancelAppointment(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), ap.ID, env.worker.ID, models.RoleWorker)
	assert.True(t, httperr.IsBusiness(err, "not_owner"))
}

func TestCancelCompletedAppointment(t *testing.T) {
	env := newTestEnv(t)

	ap := env.book(t, futureDate(), "10:00 AM")
	env.claim(t, ap.ID, env.worker.ID)

	statusUC := NewUpdateStatus(env.repo, env.audit, env.feed)
	_, err := statusUC.Execute(context.Background(), ap.ID, env.worker.ID, "completed")
	require.NoError(t, err)

	uc := NewCancelAppointment(env.repo, env.audit, env.feed)
	_, err = uc.Execute(context.Background(), ap.ID, env.client.ID, models.RoleClient)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelMissingAppointment(t *testing.T) {
	env := newTestEnv(t)

	uc := NewCancelAppointment(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), 12345, env.client.ID, models.RoleClient)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
