package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/realtime"
	"github.com/VelvetRowStudio/salon-manager/internal/timezone"
)

type ClaimAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  realtime.Publisher
}

func NewClaimAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed realtime.Publisher,
) *ClaimAppointment {
	return &ClaimAppointment{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

func (uc *ClaimAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	workerID uint,
) (*models.Appointment, error) {

	worker, err := uc.repo.GetUserByID(ctx, workerID)
	if err != nil {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if worker.Role != models.RoleWorker || !worker.Active {
		return nil, httperr.ErrBusiness("forbidden")
	}

	salon, err := uc.repo.GetSalon(ctx)
	if err != nil {
		return nil, err
	}
	now := timezone.NowIn(salon.Timezone)

	ap, err := uc.repo.ClaimAppointment(ctx, appointmentID, workerID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &workerID,
		Action:   "appointment_claimed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.feed.Publish(realtime.Event{
		Entity:   "appointment",
		Action:   "claimed",
		EntityID: ap.ID,
		ClientID: ap.ClientID,
		WorkerID: ap.WorkerID,
	})

	return ap, nil
}
