package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VelvetRowStudio/salon-manager/internal/config"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seedSalon(db, cfg)

	return db
}

// Migrate is shared with the test harness, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Service{},
		&models.Product{},
		&models.Appointment{},
		&models.Review{},
		&models.Sale{},
		&models.AuditLog{},
	)
}

func seedSalon(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Salon{}).Count(&count)
	if count > 0 {
		return
	}

	salon := models.Salon{
		Name:        "Velvet Row",
		Timezone:    cfg.SalonTimezone,
		OpenTime:    "09:00",
		CloseTime:   "17:00",
		SlotMinutes: 30,
	}
	if err := db.Create(&salon).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed salon settings")
	}
}
