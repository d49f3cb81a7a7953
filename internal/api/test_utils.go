package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ovenly/costbook/backend/internal/database"
	"github.com/ovenly/costbook/backend/internal/middleware"
	"github.com/ovenly/costbook/backend/internal/service"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

// TestDB holds the test database and services
type TestDB struct {
	DB          *gorm.DB
	AuthService *service.AuthService
}

// SetupTestDB creates an isolated in-memory database with the full schema
// and an auth service bound to it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret-0123456789"),
	}
}

// CreateTestUserAndToken registers a test user and returns their ID and a
// valid JWT token.
func CreateTestUserAndToken(t *testing.T, testDB *TestDB) (uuid.UUID, string) {
	t.Helper()

	email := fmt.Sprintf("testuser+%s@example.com", uuid.NewString())
	token, err := testDB.AuthService.Register(context.Background(), "Test User", email, "testpassword123")
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	claims, err := testDB.AuthService.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate test token: %v", err)
	}
	return claims.UserID, token
}

// setupTestRouter builds a router with the full protected API wired to
// real services over the test database.
func setupTestRouter(t *testing.T) (*gin.Engine, *TestDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB := SetupTestDB(t)
	log := logger.NewNop()

	ingredientService := service.NewIngredientService(testDB.DB, nil, log)
	recipeService := service.NewRecipeService(testDB.DB, nil, log)
	ticketService := service.NewTicketService(nil, "USD", log)

	authHandler := NewAuthHandler(testDB.AuthService)
	ingredientHandler := NewIngredientHandler(ingredientService)
	recipeHandler := NewRecipeHandler(recipeService, ticketService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(testDB.AuthService))
		{
			ingredients := protected.Group("/ingredients")
			ingredients.GET("", ingredientHandler.ListIngredients)
			ingredients.GET("/:id", ingredientHandler.GetIngredient)
			ingredients.POST("", ingredientHandler.CreateIngredient)
			ingredients.PUT("/:id", ingredientHandler.UpdateIngredient)
			ingredients.DELETE("/:id", ingredientHandler.DeleteIngredient)

			recipes := protected.Group("/recipes")
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
			recipes.POST("/:id/price", recipeHandler.PriceRecipe)
			recipes.POST("/:id/ticket", recipeHandler.TicketRecipe)
		}
	}

	return router, testDB
}
