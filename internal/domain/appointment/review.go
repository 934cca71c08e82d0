package appointment

import "github.com/VelvetRowStudio/salon-manager/internal/httperr"

// ===============================
// Review gating
// ===============================

// CanReview allows a review only once the appointment is completed.
func CanReview(current Status) error {
	if current != StatusCompleted {
		return httperr.ErrBusiness("appointment_not_completed")
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}
