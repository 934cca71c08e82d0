package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/undo"
)

func TestDeleteThenUndoRestoresRecord(t *testing.T) {
	env := newTestEnv(t)
	buffer := undo.New(time.Minute)

	ap := env.book(t, futureDate(), "10:00 AM")

	deleteUC := NewDeleteAppointment(env.repo, buffer, env.audit, env.feed)
	token, err := deleteUC.Execute(context.Background(), ap.ID, env.client.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// gone from the store
	var check models.Appointment
	err = env.db.First(&check, ap.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	undoUC := NewUndoDelete(env.repo, buffer, env.audit, env.feed)
	restored, err := undoUC.Execute(context.Background(), token, env.client.ID)
	require.NoError(t, err)

	// back with the original id and fields
	assert.Equal(t, ap.ID, restored.ID)
	assert.Equal(t, ap.TimeSlot, restored.TimeSlot)
	assert.Equal(t, ap.TotalAmount, restored.TotalAmount)

	stored := env.reload(t, ap.ID)
	assert.Equal(t, ap.TimeSlot, stored.TimeSlot)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	env := newTestEnv(t)
	buffer := undo.New(time.Minute)

	ap := env.book(t, futureDate(), "10:00 AM")

	other := models.User{Name: "Outra", Email: "outra@example.com", Role: models.RoleClient, Active: true}
	require.NoError(t, env.db.Create(&other).Error)

	deleteUC := NewDeleteAppointment(env.repo, buffer, env.audit, env.feed)
	_, err := deleteUC.Execute(context.Background(), ap.ID, other.ID)
	assert.True(t, httperr.IsBusiness(err, "not_owner"))

	// still there
	env.reload(t, ap.ID)
}

func TestUndoTokenIsSingleUse(t *testing.T) {
	env := newTestEnv(t)
	buffer := undo.New(time.Minute)

	ap := env.book(t, futureDate(), "10:00 AM")

	deleteUC := NewDeleteAppointment(env.repo, buffer, env.audit, env.feed)
	token, err := deleteUC.Execute(context.Background(), ap.ID, env.client.ID)
	require.NoError(t, err)

	undoUC := NewUndoDelete(env.repo, buffer, env.audit, env.feed)
	_, err = undoUC.Execute(context.Background(), token, env.client.ID)
	require.NoError(t, err)

	_, err = undoUC.Execute(context.Background(), token, env.client.ID)
	assert.True(t, httperr.IsBusiness(err, "undo_expired"))
}

func TestUndoAfterWindowExpires(t *testing.T) {
	env := newTestEnv(t)

	// zero window: the entry expires the moment it is stored
	buffer := undo.New(0)

	ap := env.book(t, futureDate(), "10:00 AM")

	deleteUC := NewDeleteAppointment(env.repo, buffer, env.audit, env.feed)
	token, err := deleteUC.Execute(context.Background(), ap.ID, env.client.ID)
	require.NoError(t, err)

	undoUC := NewUndoDelete(env.repo, buffer, env.audit, env.feed)
	_, err = undoUC.Execute(context.Background(), token, env.client.ID)
	assert.True(t, httperr.IsBusiness(err, "undo_expired"))
}

func TestUndoUnknownToken(t *testing.T) {
	env := newTestEnv(t)
	buffer := undo.New(time.Minute)

	undoUC := NewUndoDelete(env.repo, buffer, env.audit, env.feed)
	_, err := undoUC.Execute(context.Background(), "bogus", env.client.ID)
	assert.True(t, httperr.IsBusiness(err, "undo_expired"))
}
