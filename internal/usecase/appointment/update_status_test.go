package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
)

func TestCompleteConfirmedAppointment(t *testing.T) {
	env := newTestEnv(t)

	ap := env.book(t, futureDate(), "10:00 AM")
	env.claim(t, ap.ID, env.worker.ID)

	uc := NewUpdateStatus(env.repo, env.audit, env.feed)
	done, err := uc.Execute(context.Background(), ap.ID, env.worker.ID, "completed")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)

	got := env.reload(t, ap.ID)
	assert.Equal(t, string(domain.StatusCompleted), got.Status)
}

func TestCompleteRequiresOwnership(t *testing.T) {
	env := newTestEnv(t)
	rival := env.addWorker(t, "carla@example.com")

	ap := env.book(t, futureDate(), "10:00 AM")
	env.claim(t, ap.ID, env.worker.ID)

	uc := NewUpdateStatus(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), ap.ID, rival.ID, "completed")
	assert.True(t, httperr.IsBusiness(err, "not_owner"))

	got := env.reload(t, ap.ID)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
}

func TestCompleteUnclaimedAppointment(t *testing.T) {
	env := newTestEnv(t)
	ap := env.book(t, futureDate(), "10:00 AM")

	uc := NewUpdateStatus(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), ap.ID, env.worker.ID, "completed")
	assert.True(t, httperr.IsBusiness(err, "not_owner"))
}

func TestWorkerCancelsHeldAppointment(t *testing.T) {
	env := newTestEnv(t)

	ap := env.book(t, futureDate(), "10:00 AM")
	env.claim(t, ap.ID, env.worker.ID)

	uc := NewUpdateStatus(env.repo, env.audit, env.feed)
	got, err := uc.Execute(context.Background(), ap.ID, env.worker.ID, "cancelled")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.NotNil(t, got.CancelledAt)
}

func TestCompletedIsTerminal(t *testing.T) {
	env := newTestEnv(t)

	ap := env.book(t, futureDate(), "10:00 AM")
	env.claim(t, ap.ID, env.worker.ID)

	uc := NewUpdateStatus(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), ap.ID, env.worker.ID, "completed")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), ap.ID, env.worker.ID, "cancelled")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	ap := env.book(t, futureDate(), "10:00 AM")

	uc := NewUpdateStatus(env.repo, env.audit, env.feed)
	_, err := uc.Execute(context.Background(), ap.ID, env.worker.ID, "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
