package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VelvetRowStudio/salon-manager/internal/audit"
	dbpkg "github.com/VelvetRowStudio/salon-manager/internal/db"
	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	infraRepo "github.com/VelvetRowStudio/salon-manager/internal/infra/repository"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/realtime"
)

// testEnv wires the lifecycle use cases against an in-memory sqlite
// store, with a seeded salon, one client, one worker and one service.
type testEnv struct {
	db   *gorm.DB
	repo domain.Repository

	audit *audit.Dispatcher
	feed  realtime.Publisher

	client  models.User
	worker  models.User
	service models.Service
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := newTestDB(t)

	env := &testEnv{
		db:    gdb,
		repo:  infraRepo.NewAppointmentGormRepository(gdb),
		audit: audit.NewDispatcher(audit.New(gdb)),
		feed:  realtime.NewDispatcher(realtime.NopSink{}),
	}

	require.NoError(t, gdb.Create(&models.Salon{
		Name:        "Velvet Row",
		Timezone:    "UTC",
		OpenTime:    "09:00",
		CloseTime:   "17:00",
		SlotMinutes: 30,
	}).Error)

	env.client = models.User{
		Name:   "Ana Cliente",
		Email:  "ana@example.com",
		Role:   models.RoleClient,
		Active: true,
	}
	require.NoError(t, gdb.Create(&env.client).Error)

	env.worker = models.User{
		Name:   "Bia Profissional",
		Email:  "bia@example.com",
		Role:   models.RoleWorker,
		Active: true,
	}
	require.NoError(t, gdb.Create(&env.worker).Error)

	env.service = models.Service{
		Name:        "Classic Manicure",
		DurationMin: 30,
		Price:       35,
		Active:      true,
	}
	require.NoError(t, gdb.Create(&env.service).Error)

	return env
}

func (e *testEnv) addWorker(t *testing.T, email string) models.User {
	t.Helper()

	w := models.User{
		Name:   "Extra Worker",
		Email:  email,
		Role:   models.RoleWorker,
		Active: true,
	}
	require.NoError(t, e.db.Create(&w).Error)
	return w
}

// futureDate is a calendar day comfortably past today, so every grid
// slot of it is bookable.
func futureDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

// book creates a pending appointment for the seeded client.
func (e *testEnv) book(t *testing.T, date, slot string) *models.Appointment {
	t.Helper()

	uc := NewBookAppointment(e.repo, e.audit, e.feed)
	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		ClientID:  e.client.ID,
		ServiceID: e.service.ID,
		Date:      date,
		TimeSlot:  slot,
	})
	require.NoError(t, err)
	return ap
}

// claim confirms an appointment for a worker.
func (e *testEnv) claim(t *testing.T, appointmentID, workerID uint) *models.Appointment {
	t.Helper()

	uc := NewClaimAppointment(e.repo, e.audit, e.feed)
	ap, err := uc.Execute(context.Background(), appointmentID, workerID)
	require.NoError(t, err)
	return ap
}

func (e *testEnv) reload(t *testing.T, id uint) *models.Appointment {
	t.Helper()

	var ap models.Appointment
	require.NoError(t, e.db.First(&ap, id).Error)
	return &ap
}
