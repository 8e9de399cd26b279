package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jellomark/beautishop-scheduler/internal/config"
	"github.com/jellomark/beautishop-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.ShopImage{},
		&models.Treatment{},
		&models.Reservation{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// Range exclusion over active reservations backs the booking
	// coordinator's conflict guarantee at the storage level: even if two
	// writers slipped past the advisory lock, the second insert would fail.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`ALTER TABLE reservations DROP CONSTRAINT IF EXISTS reservations_no_overlap`)
	db.Exec(`
        ALTER TABLE reservations
        ADD CONSTRAINT reservations_no_overlap
        EXCLUDE USING gist (
            shop_id WITH =,
            date WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('PENDING', 'CONFIRMED'))
    `)

	return db
}
