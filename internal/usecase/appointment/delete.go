package appointment

import (
	"context"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/realtime"
	"github.com/VelvetRowStudio/salon-manager/internal/undo"
)

type DeleteAppointment struct {
	repo   domain.Repository
	buffer *undo.Buffer
	audit  *audit.Dispatcher
	feed   realtime.Publisher
}

func NewDeleteAppointment(
	repo domain.Repository,
	buffer *undo.Buffer,
	audit *audit.Dispatcher,
	feed realtime.Publisher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:   repo,
		buffer: buffer,
		audit:  audit,
		feed:   feed,
	}
}

// Execute removes the record from the store entirely (distinct from
// cancellation) and parks a copy in the undo buffer. The returned token
// restores it within the undo window.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	clientID uint,
) (string, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return "", httperr.ErrBusiness("appointment_not_found")
	}

	if ap.ClientID != clientID {
		return "", httperr.ErrBusiness("not_owner")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return "", err
	}

	token := uc.buffer.Put(ap)

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.feed.Publish(realtime.Event{
		Entity:   "appointment",
		Action:   "deleted",
		EntityID: ap.ID,
		ClientID: ap.ClientID,
		WorkerID: ap.WorkerID,
	})

	return token, nil
}
