package repository

import (
	"github.com/shadowbane/nautic/pkg/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by this service
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Sport{},
		&models.Spot{},
		&models.VariableMeteorologica{},
	)
}
