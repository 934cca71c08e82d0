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

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID  uint
	ServiceID uint

	Date     string // "2006-01-02"
	TimeSlot string // "09:00 AM"
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  realtime.Publisher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed realtime.Publisher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Client must exist and be active
	// --------------------------------------------------
	client, err := uc.repo.GetUserByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("account_inactive")
	}
	if !client.Active {
		return nil, httperr.ErrBusiness("account_inactive")
	}

	// --------------------------------------------------
	// Salon settings -> booking grid + timezone
	// --------------------------------------------------
	salon, err := uc.repo.GetSalon(ctx)
	if err != nil {
		return nil, err
	}

	grid := domain.GridFromSalon(salon)
	loc := timezone.Location(salon.Timezone)

	// --------------------------------------------------
	// Date + slot on the grid, not in the past
	// --------------------------------------------------
	date, err := timezone.DateIn(salon.Timezone, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot, err := grid.Normalize(in.TimeSlot)
	if err != nil {
		return nil, err
	}

	start, err := grid.StartAt(date, slot, loc)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	if !start.After(now) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	// --------------------------------------------------
	// Service (price snapshot source)
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	// --------------------------------------------------
	// Conflict check + insert in one transaction
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:  in.ClientID,
		ServiceID: svc.ID,
		Date:      date,
		TimeSlot:  slot,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,

		ServiceName:  svc.Name,
		ServicePrice: svc.Price,
		TotalAmount:  svc.Price,
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Audit + change feed
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.feed.Publish(realtime.Event{
		Entity:   "appointment",
		Action:   "created",
		EntityID: ap.ID,
		ClientID: ap.ClientID,
	})

	return ap, nil
}
