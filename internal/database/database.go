package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
)

// Connect opens PostgreSQL when the DSN looks like a postgres URL and falls
// back to the modernc sqlite driver otherwise (local development and tests).
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey.
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate creates/updates the schema for every entity the service owns
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Area{},
		&domain.Place{},
		&domain.Event{},
		&domain.Article{},
		&domain.Review{},
		&domain.Favorite{},
		&domain.Ticket{},
		&notification.Notification{},
	)
}
