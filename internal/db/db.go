package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shadysnails/salon-scheduler/internal/config"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config, logger zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Worker{},
		&models.User{},
		&models.Service{},
		&models.Additional{},
		&models.Customer{},
		&models.WorkerSchedule{},
		&models.BlockedDate{},
		&models.Appointment{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return addOverlapConstraint(db)
	}
	return nil
}

// addOverlapConstraint installs a range exclusion constraint over
// (worker_id, date, [start_time, end_time)) for non-cancelled rows, so
// concurrent bookings that slip past the application-level check are
// rejected at commit time. httperr.IsExclusionConflict maps the
// rejection back onto the time_conflict business error.
func addOverlapConstraint(db *gorm.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`DO $$ BEGIN
			CREATE TYPE timerange AS RANGE (subtype = time);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE appointments
			ADD CONSTRAINT appointments_no_overlap
			EXCLUDE USING gist (
				worker_id WITH =,
				date WITH =,
				timerange(start_time::time, end_time::time) WITH &&
			) WHERE (status <> 'cancelled');
		EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL; END $$`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
