package appointment

import (
	"context"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/realtime"
	"github.com/VelvetRowStudio/salon-manager/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  realtime.Publisher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed realtime.Publisher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

// Execute cancels on behalf of the actor: a client may cancel their own
// pending or confirmed appointment, a worker one they currently hold.
// Cancellation never deletes the record.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	actorRole string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	salon, err := uc.repo.GetSalon(ctx)
	if err != nil {
		return nil, err
	}
	now := timezone.NowIn(salon.Timezone)

	prior := domain.Status(ap.Status)

	switch actorRole {
	case models.RoleClient:
		if ap.ClientID != actorID {
			return nil, httperr.ErrBusiness("not_owner")
		}
		if err := domain.Cancel(ap, now); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateStatusAsClient(ctx, ap, actorID, prior); err != nil {
			return nil, err
		}

	case models.RoleWorker:
		if !domain.IsOwnedBy(ap, actorID) {
			return nil, httperr.ErrBusiness("not_owner")
		}
		if err := domain.Cancel(ap, now); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateStatusAsWorker(ctx, ap, actorID, prior); err != nil {
			return nil, err
		}

	default:
		return nil, httperr.ErrBusiness("forbidden")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.feed.Publish(realtime.Event{
		Entity:   "appointment",
		Action:   "cancelled",
		EntityID: ap.ID,
		ClientID: ap.ClientID,
		WorkerID: ap.WorkerID,
	})

	return ap, nil
}
