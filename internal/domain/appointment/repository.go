package appointment

import (
	"context"
	"time"

	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

type Repository interface {
	// -------- Salon / Users / Services --------
	GetSalon(
		ctx context.Context,
	) (*models.Salon, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------

	// CreateIfSlotFree runs the confirmed-slot check and the insert in
	// a single transaction and fails with slot_taken on conflict.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (claim) --------

	// ClaimAppointment performs a conditional update that only succeeds
	// while worker_id is still null and status is pending. The losing
	// side of a race gets already_claimed without touching the row.
	ClaimAppointment(
		ctx context.Context,
		appointmentID uint,
		workerID uint,
		now time.Time,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// UpdateStatusAsWorker persists ap only if the row still belongs to
	// workerID and still carries expect; zero rows means ownership or
	// state changed since the caller read it.
	UpdateStatusAsWorker(
		ctx context.Context,
		ap *models.Appointment,
		workerID uint,
		expect Status,
	) error

	UpdateStatusAsClient(
		ctx context.Context,
		ap *models.Appointment,
		clientID uint,
		expect Status,
	) error

	// -------- Appointment (delete / undo) --------
	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	// ReinsertAppointment puts a previously deleted record back with
	// its original id and fields.
	ReinsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Queries --------
	ListConfirmedForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListUnclaimed(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListForWorkerByDate(
		ctx context.Context,
		workerID uint,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Reviews --------

	// GetReviewByAppointment returns (nil, nil) when no review exists.
	GetReviewByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Review, error)

	SaveReview(
		ctx context.Context,
		review *models.Review,
	) error
}
