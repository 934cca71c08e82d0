package appointment

import (
	"context"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/realtime"
	"github.com/VelvetRowStudio/salon-manager/internal/undo"
)

type UndoDelete struct {
	repo   domain.Repository
	buffer *undo.Buffer
	audit  *audit.Dispatcher
	feed   realtime.Publisher
}

func NewUndoDelete(
	repo domain.Repository,
	buffer *undo.Buffer,
	audit *audit.Dispatcher,
	feed realtime.Publisher,
) *UndoDelete {
	return &UndoDelete{
		repo:   repo,
		buffer: buffer,
		audit:  audit,
		feed:   feed,
	}
}

// Execute reinserts the buffered record with its original id and
// fields. Best effort: if the insert fails the record is lost and the
// caller is told so; the delete is not rolled back.
func (uc *UndoDelete) Execute(
	ctx context.Context,
	token string,
	clientID uint,
) (*models.Appointment, error) {

	ap, ok := uc.buffer.Take(token)
	if !ok {
		return nil, httperr.ErrBusiness("undo_expired")
	}

	if ap.ClientID != clientID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	if err := uc.repo.ReinsertAppointment(ctx, ap); err != nil {
		return nil, httperr.ErrBusiness("undo_failed")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "appointment_restored",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.feed.Publish(realtime.Event{
		Entity:   "appointment",
		Action:   "restored",
		EntityID: ap.ID,
		ClientID: ap.ClientID,
		WorkerID: ap.WorkerID,
	})

	return ap, nil
}
