// Seeds a demo account with staple bakery ingredients and one costed
// recipe, for local development.
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ovenly/costbook/backend/config"
	"github.com/ovenly/costbook/backend/internal/costing"
	"github.com/ovenly/costbook/backend/internal/database"
	"github.com/ovenly/costbook/backend/internal/service"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

func main() {
	log := logger.New("seed")
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	ctx := context.Background()

	authService := service.NewAuthService(db, cfg.JWTSecret)
	token, err := authService.Register(ctx, "Demo Baker", "demo@costbook.dev", "demo-password")
	if err != nil {
		log.Fatalw("failed to create demo user", "error", err)
	}
	claims, err := authService.ValidateToken(token)
	if err != nil {
		log.Fatalw("failed to resolve demo user", "error", err)
	}
	ownerID := claims.UserID

	ingredientService := service.NewIngredientService(db, nil, log)
	recipeService := service.NewRecipeService(db, nil, log)

	staples := []service.IngredientInput{
		{Name: "Wheat flour", Unit: costing.UnitKilogram, PricePerUnit: decimal.NewFromInt(4200)},
		{Name: "Butter", Unit: costing.UnitKilogram, PricePerUnit: decimal.NewFromInt(28000)},
		{Name: "Whole milk", Unit: costing.UnitLiter, PricePerUnit: decimal.NewFromInt(3600)},
		{Name: "Eggs", Unit: costing.UnitCount, PricePerUnit: decimal.NewFromInt(650)},
		{Name: "Yeast", Unit: costing.UnitGram, PricePerUnit: decimal.NewFromInt(12)},
	}

	recipe := service.RecipeInput{
		Name:       "Brioche loaf",
		TotalYield: decimal.NewFromInt(900),
		YieldUnit:  "g",
	}
	for _, input := range staples {
		ingredient, err := ingredientService.Create(ctx, ownerID, input)
		if err != nil {
			log.Fatalw("failed to seed ingredient", "name", input.Name, "error", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, service.UsageInput{
			IngredientID: ingredient.ID,
			QuantityUsed: decimal.NewFromInt(100),
		})
	}

	seeded, err := recipeService.Create(ctx, ownerID, recipe)
	if err != nil {
		log.Fatalw("failed to seed recipe", "error", err)
	}

	log.Infow("seeded demo data",
		"owner_id", ownerID,
		"recipe_id", seeded.ID,
		"total_cost", seeded.TotalCost,
		"cost_per_unit", seeded.CostPerUnit,
	)
}
