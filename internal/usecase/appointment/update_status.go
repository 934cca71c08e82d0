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

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  realtime.Publisher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed realtime.Publisher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

// Execute moves an appointment the caller owns to newStatus. The write
// re-verifies ownership and the expected status, so a claim lost in the
// meantime surfaces as not_owner instead of clobbering the row.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	workerID uint,
	newStatus string,
) (*models.Appointment, error) {

	target, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !domain.IsOwnedBy(ap, workerID) {
		return nil, httperr.ErrBusiness("not_owner")
	}

	prior := domain.Status(ap.Status)
	if err := domain.CanTransition(prior, target); err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalon(ctx)
	if err != nil {
		return nil, err
	}
	now := timezone.NowIn(salon.Timezone)

	switch target {
	case domain.StatusCompleted:
		err = domain.Complete(ap, now)
	case domain.StatusCancelled:
		err = domain.Cancel(ap, now)
	default:
		err = httperr.ErrBusiness("invalid_state")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatusAsWorker(ctx, ap, workerID, prior); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &workerID,
		Action:   "appointment_" + string(target),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.feed.Publish(realtime.Event{
		Entity:   "appointment",
		Action:   string(target),
		EntityID: ap.ID,
		ClientID: ap.ClientID,
		WorkerID: ap.WorkerID,
	})

	return ap, nil
}
