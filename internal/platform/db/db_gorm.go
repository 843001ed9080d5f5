// Package db opens the relational store and prepares the schema.
package db

import (
	"errors"
	"log"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "item_backend/internal/feature/auth/domain/entity"
	itementity "item_backend/internal/feature/items/domain/entity"
	"item_backend/internal/platform/config"
	"item_backend/internal/platform/security"
)

// OpenDB connects to the configured database and runs migrations.
// postgres:// URLs select the postgres driver; anything else is treated as a
// sqlite file path. Connection failures are retried for up to 60 seconds
// before the process gives up.
func OpenDB(cfg *config.Config) *gorm.DB {
	dialector := dialectorFor(cfg)

	// TranslateError maps driver-specific unique violations to gorm.ErrDuplicatedKey.
	gcfg := &gorm.Config{TranslateError: true}

	var (
		conn *gorm.DB
		err  error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(dialector, gcfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.Database.AutoMigrate {
		if err := conn.AutoMigrate(
			&authentity.User{},
			&itementity.Item{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	if err := seedAdmin(conn, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	return conn
}

func dialectorFor(cfg *config.Config) gorm.Dialector {
	if cfg.IsPostgres() {
		return gpostgres.Open(cfg.Database.URL)
	}
	return gsqlite.Open(cfg.Database.URL)
}

// seedAdmin creates the configured initial admin account when it does not
// exist yet. Seeding is disabled when no seed email is configured.
func seedAdmin(conn *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.Email == "" {
		return nil
	}

	var existing authentity.User
	err := conn.Where("email = ?", cfg.Seed.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := security.HashPassword(cfg.Seed.Password, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	user := &authentity.User{
		Email:          cfg.Seed.Email,
		Username:       cfg.Seed.Username,
		HashedPassword: hashed,
		FullName:       cfg.Seed.FullName,
		IsActive:       true,
	}
	if err := conn.Create(user).Error; err != nil {
		return err
	}
	slog.Info("seeded initial admin user", "email", cfg.Seed.Email)
	return nil
}
