package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ovenly/costbook/backend/internal/costing"
	"github.com/ovenly/costbook/backend/internal/database"
	"github.com/ovenly/costbook/backend/internal/models"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	user := models.User{
		Name:         "Test Baker",
		Email:        fmt.Sprintf("baker+%s@example.com", uuid.NewString()),
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func createTestIngredient(t *testing.T, svc *IngredientService, ownerID uuid.UUID, name string, unit costing.Unit, price int64) *models.Ingredient {
	t.Helper()

	ingredient, err := svc.Create(context.Background(), ownerID, IngredientInput{
		Name:         name,
		Unit:         unit,
		PricePerUnit: decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return ingredient
}

func newServices(t *testing.T) (*gorm.DB, *IngredientService, *RecipeService) {
	t.Helper()

	db := setupTestDB(t)
	log := logger.NewNop()
	return db, NewIngredientService(db, nil, log), NewRecipeService(db, nil, log)
}
