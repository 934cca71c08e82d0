package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Salon / Users / Services
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalon(
	ctx context.Context,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).Order("id ASC").First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"date = ? AND time_slot = ? AND status = ?",
				ap.Date, ap.TimeSlot, string(domain.StatusConfirmed),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (claim)
// --------------------------------------------------

func (r *AppointmentGormRepository) ClaimAppointment(
	ctx context.Context,
	appointmentID uint,
	workerID uint,
	now time.Time,
) (*models.Appointment, error) {

	var claimed models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ap models.Appointment
		if err := tx.First(&ap, appointmentID).Error; err != nil {
			return err
		}

		// the slot must not already be held by another confirmed
		// appointment booked for the same (date, time_slot)
		var conflicts int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"date = ? AND time_slot = ? AND status = ? AND id <> ?",
				ap.Date, ap.TimeSlot, string(domain.StatusConfirmed), ap.ID,
			).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		// single conditional write: only the first worker gets rows=1
		res := tx.
			Model(&models.Appointment{}).
			Where(
				"id = ? AND worker_id IS NULL AND status = ?",
				appointmentID, string(domain.StatusPending),
			).
			Updates(map[string]any{
				"worker_id":  workerID,
				"status":     string(domain.StatusConfirmed),
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			if ap.WorkerID != nil {
				return httperr.ErrBusiness("already_claimed")
			}
			if domain.Status(ap.Status) != domain.StatusPending {
				return httperr.ErrBusiness("invalid_state")
			}
			// raced between the read and the conditional write
			return httperr.ErrBusiness("already_claimed")
		}

		return tx.First(&claimed, appointmentID).Error
	})

	if err != nil {
		return nil, err
	}
	return &claimed, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateStatusAsWorker(
	ctx context.Context,
	ap *models.Appointment,
	workerID uint,
	expect domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"id = ? AND worker_id = ? AND status = ?",
			ap.ID, workerID, string(expect),
		).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"updated_at":   ap.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		// ownership or status changed since the caller read the row
		return httperr.ErrBusiness("not_owner")
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateStatusAsClient(
	ctx context.Context,
	ap *models.Appointment,
	clientID uint,
	expect domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"id = ? AND client_id = ? AND status = ?",
			ap.ID, clientID, string(expect),
		).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"updated_at":   ap.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("not_owner")
	}
	return nil
}

// --------------------------------------------------
// Appointment (delete / undo)
// --------------------------------------------------

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	appointmentID uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, appointmentID).Error
}

func (r *AppointmentGormRepository) ReinsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// explicit id insert; fails if the id was reused meanwhile
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AppointmentGormRepository) ListConfirmedForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"date = ? AND status = ?",
			date, string(domain.StatusConfirmed),
		).
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("client_id = ?", clientID).
		Order("date DESC, time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListUnclaimed(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"worker_id IS NULL AND status = ?",
			string(domain.StatusPending),
		).
		Order("date ASC, time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListForWorkerByDate(
	ctx context.Context,
	workerID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("worker_id = ? AND date = ?", workerID, date).
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
