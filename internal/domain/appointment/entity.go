package appointment

import (
	"time"

	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Claim(ap *models.Appointment, workerID uint, now time.Time) error {
	if err := CanClaim(Status(ap.Status)); err != nil {
		return err
	}

	ap.WorkerID = &workerID
	ap.Status = string(StatusConfirmed)
	ap.UpdatedAt = now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.UpdatedAt = now
	return nil
}

// IsOwnedBy reports whether the worker currently holds the appointment.
func IsOwnedBy(ap *models.Appointment, workerID uint) bool {
	return ap.WorkerID != nil && *ap.WorkerID == workerID
}
