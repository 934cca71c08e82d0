package review

import (
	"context"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/realtime"
)

// ======================================================
// INPUT
// ======================================================

type SubmitReviewInput struct {
	AppointmentID uint
	ClientID      uint
	Rating        int
	Comment       string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  realtime.Publisher
}

func NewSubmitReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed realtime.Publisher,
) *SubmitReview {
	return &SubmitReview{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

// Execute upserts the single review of a completed appointment:
// submitting again edits the existing row instead of adding a second.
func (uc *SubmitReview) Execute(
	ctx context.Context,
	in SubmitReviewInput,
) (*models.Review, error) {

	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.ClientID != in.ClientID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	if err := domain.CanReview(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	rev, err := uc.repo.GetReviewByAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	action := "review_updated"
	if rev == nil {
		rev = &models.Review{
			AppointmentID: in.AppointmentID,
			ClientID:      in.ClientID,
		}
		action = "review_created"
	}

	rev.Rating = in.Rating
	rev.Comment = in.Comment

	if err := uc.repo.SaveReview(ctx, rev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   action,
		Entity:   "review",
		EntityID: &rev.ID,
	})

	uc.feed.Publish(realtime.Event{
		Entity:   "review",
		Action:   action,
		EntityID: rev.ID,
		ClientID: rev.ClientID,
	})

	return rev, nil
}
