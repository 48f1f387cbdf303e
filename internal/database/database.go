package database

import (
	"log"
	"strings"

	"campusspaces/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the cgo-free sqlite driver
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date. The overlap guard index on
// reservations is created separately because AutoMigrate cannot express a
// partial index over an expression.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Space{},
		&domain.Reservation{},
	); err != nil {
		return err
	}
	return createOverlapGuard(db)
}

// createOverlapGuard installs a storage-level backstop against double
// booking. On PostgreSQL this is a btree_gist exclusion constraint over the
// reservation window for active statuses; the application-level keyed lock
// remains the primary serialization point, the constraint catches anything
// that slips past it (for example a second API instance).
func createOverlapGuard(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return db.Exec(`
DO $$ BEGIN
  ALTER TABLE reservations ADD CONSTRAINT idx_no_double_booking
    EXCLUDE USING gist (
      space_id WITH =,
      tsrange(start_time, end_time, '[)') WITH &&
    ) WHERE (status IN ('pending', 'confirmed'));
EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL;
END $$;
`).Error
}
