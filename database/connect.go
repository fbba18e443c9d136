package database

import (
	"fmt"
	"time"

	"foundation_backend/config"
	"foundation_backend/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PoolConfig struct {
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
}

func DefaultPool() PoolConfig {
	return PoolConfig{
		MaxOpen:         config.ConfigInt("DB_MAX_OPEN", 10),
		MaxIdle:         config.ConfigInt("DB_MAX_IDLE", 5),
		ConnMaxLifetime: time.Duration(config.ConfigInt("DB_CONN_LIFETIME_MIN", 30)) * time.Minute,
	}
}

func connect(dsn string, pool PoolConfig, models ...any) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetMaxIdleConns(pool.MaxIdle)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func buildDSN(prefix string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.Config(prefix+"_HOST"),
		config.Config(prefix+"_PORT"),
		config.Config(prefix+"_USER"),
		config.Config(prefix+"_PASSWORD"),
		config.Config(prefix+"_NAME"),
	)
}

// ConnectMain opens the primary database (events, tickets, messages, gallery).
func ConnectMain(pool PoolConfig) (*gorm.DB, error) {
	return connect(buildDSN("DB"), pool,
		&model.Event{},
		&model.Ticket{},
		&model.ContactMessage{},
		&model.GalleryImage{},
	)
}

// ConnectCards opens the second, independent database holding invitation
// cards and their batches.
func ConnectCards(pool PoolConfig) (*gorm.DB, error) {
	return connect(buildDSN("CARDS_DB"), pool,
		&model.InvitationCard{},
		&model.Batch{},
	)
}
