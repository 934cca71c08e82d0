package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

func TestClaimSetsWorkerAndConfirms(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Claim(ap, 7, now))

	require.NotNil(t, ap.WorkerID)
	assert.Equal(t, uint(7), *ap.WorkerID)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Equal(t, now, ap.UpdatedAt)
}

func TestClaimRejectsNonPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	err := Claim(ap, 7, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, ap.WorkerID, "a failed claim must not touch the record")
}

func TestCancelStampsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(ap, now))

	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestCompleteOnlyFromConfirmed(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	pending := &models.Appointment{Status: string(StatusPending)}
	err := Complete(pending, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestIsOwnedBy(t *testing.T) {
	workerID := uint(3)

	assert.False(t, IsOwnedBy(&models.Appointment{}, 3), "unclaimed is owned by nobody")
	assert.True(t, IsOwnedBy(&models.Appointment{WorkerID: &workerID}, 3))
	assert.False(t, IsOwnedBy(&models.Appointment{WorkerID: &workerID}, 4))
}
