package configuration

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/22Vinith/Hospital-Management/models"
)

// ConfigDB opens the postgres connection and migrates the schema.
// TranslateError lets the repositories distinguish duplicate-key
// violations from other failures.
func ConfigDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Bill{},
		&models.Specialization{},
	); err != nil {
		return nil, fmt.Errorf("auto migration failed: %w", err)
	}
	return db, nil
}
