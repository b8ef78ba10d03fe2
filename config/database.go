package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ritamsamanta1/fish/models"
)

// Connect opens the database and migrates the schema. Postgres is used when
// DATABASE_URL is set; otherwise a local sqlite file.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Farmer{}, &models.Product{}, &models.Tip{}); err != nil {
		return nil, err
	}
	log.Println("Database connection established and migrated successfully")
	return db, nil
}
