package database

import (
	"gorm.io/gorm"

	"github.com/ovenly/costbook/backend/internal/models"
)

// RunMigrations brings the schema up to date for every model the service
// persists.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
	)
}
