package database

import (
	"log"

	"talentscout_backend/internal/config"
	"talentscout_backend/internal/model"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens (creating on first run) the single sqlite database file and
// migrates the schema.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.AdminUser{},
		&model.ScreeningSession{},
		&model.Report{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// BootstrapAdmin creates the default admin account when the table is empty.
// An existing account is never touched here; use the CLI upsert to rotate
// credentials.
func BootstrapAdmin(db *gorm.DB, cfg *config.AdminConfig) error {
	var count int64
	if err := db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.AdminUser{
		Username:     cfg.Username,
		PasswordHash: string(hash),
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Bootstrapped default admin account %q", cfg.Username)
	return nil
}
