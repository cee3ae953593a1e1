package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tatagen/dogo-akiheyasystem.v2/config"
	"github.com/tatagen/dogo-akiheyasystem.v2/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.SchemaMigration{},
		&models.Room{},
		&models.OccupancyRequest{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	// data migrations run after the schema is in place; each is
	// versioned, transactional and applied at most once
	if err := RunMigrations(DB); err != nil {
		log.Fatalf("data migrations failed: %v", err)
	}
}
