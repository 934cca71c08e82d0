package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *AppointmentGormRepository) GetReviewByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Review, error) {

	var review models.Review
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&review).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *AppointmentGormRepository) SaveReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Save(review).Error
}
