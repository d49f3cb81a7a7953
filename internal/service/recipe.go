package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenly/costbook/backend/internal/costing"
	"github.com/ovenly/costbook/backend/internal/datasource"
	"github.com/ovenly/costbook/backend/internal/models"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

// UsageInput is one ingredient line of a recipe as submitted by the user.
type UsageInput struct {
	IngredientID uuid.UUID
	QuantityUsed decimal.Decimal
}

// RecipeInput carries the user-editable fields of a recipe. Every save
// recomputes all derived cost fields from the owner's current prices.
type RecipeInput struct {
	Name        string
	TotalYield  decimal.Decimal
	YieldUnit   string
	Ingredients []UsageInput
}

// RecipeService handles owner-scoped recipe operations and the costing
// performed at save time.
type RecipeService struct {
	db       *gorm.DB
	notifier datasource.Notifier
	log      *logger.Logger
}

func NewRecipeService(db *gorm.DB, notifier datasource.Notifier, log *logger.Logger) *RecipeService {
	return &RecipeService{db: db, notifier: notifier, log: log}
}

// List returns all recipes of the owner with their usage rows.
func (s *RecipeService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Preload("Ingredients").Where("user_id = ?", ownerID).Order("name").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get returns one recipe of the owner with its usage rows.
func (s *RecipeService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).Preload("Ingredients").Where("user_id = ? AND id = ?", ownerID, id).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create validates, costs and persists a new recipe.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		UserID:     ownerID,
		Name:       input.Name,
		TotalYield: input.TotalYield,
		YieldUnit:  input.YieldUnit,
	}
	rows, totalCost, costPerUnit, err := s.costUsages(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}
	recipe.TotalCost = totalCost
	recipe.CostPerUnit = costPerUnit
	recipe.Ingredients = rows

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}

	s.log.Infow("recipe created", "recipe_id", recipe.ID, "owner_id", ownerID, "total_cost", totalCost)
	s.publish(ctx, ownerID, "created", recipe.ID)
	return &recipe, nil
}

// Update replaces the recipe's fields and usage rows in one transaction,
// recomputing all cost figures from the owner's current ingredient prices.
func (s *RecipeService) Update(ctx context.Context, ownerID, id uuid.UUID, input RecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	rows, totalCost, costPerUnit, err := s.costUsages(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].RecipeID = recipe.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"name":          input.Name,
			"total_yield":   input.TotalYield,
			"yield_unit":    input.YieldUnit,
			"total_cost":    totalCost,
			"cost_per_unit": costPerUnit,
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, ownerID, "updated", recipe.ID)
	return s.Get(ctx, ownerID, id)
}

// Delete removes the recipe and its usage rows.
func (s *RecipeService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND id = ?", ownerID, id).Delete(&models.Recipe{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error
	})
	if err != nil {
		return err
	}

	s.publish(ctx, ownerID, "deleted", id)
	return nil
}

// Price computes the sale economics for quantitySold yield units of the
// recipe using its frozen cost-per-unit, plus the ticket handed to the
// receipt renderer.
func (s *RecipeService) Price(ctx context.Context, ownerID, id uuid.UUID, quantitySold decimal.Decimal) (costing.Quote, costing.Ticket, error) {
	recipe, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return costing.Quote{}, costing.Ticket{}, err
	}

	quote := costing.Price(recipe.CostPerUnit, quantitySold, costing.DefaultMarkup)
	ticket := costing.Ticket{
		RecipeName:     recipe.Name,
		QuantitySold:   quantitySold,
		UnitLabel:      recipe.YieldUnit,
		SuggestedPrice: quote.SuggestedPrice,
	}
	return quote, ticket, nil
}

// costUsages resolves every usage against the owner's current ingredients
// and freezes the per-row costs and totals. Unresolved references keep
// their row but contribute zero cost.
func (s *RecipeService) costUsages(ctx context.Context, ownerID uuid.UUID, input RecipeInput) ([]models.RecipeIngredient, decimal.Decimal, decimal.Decimal, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&ingredients).Error; err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	byID := make(map[uuid.UUID]models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	usages := make([]costing.Usage, len(input.Ingredients))
	rows := make([]models.RecipeIngredient, len(input.Ingredients))
	for i, u := range input.Ingredients {
		usage := costing.Usage{QuantityUsed: u.QuantityUsed}
		if ing, ok := byID[u.IngredientID]; ok {
			usage.PricePerUnit = ing.PricePerUnit
			usage.Unit = ing.Unit
			usage.Resolved = true
		}
		usages[i] = usage

		cost := decimal.Zero
		if usage.Resolved {
			cost = costing.UsageCost(usage.PricePerUnit, usage.Unit, usage.QuantityUsed)
		}
		rows[i] = models.RecipeIngredient{
			IngredientID:   u.IngredientID,
			QuantityUsed:   u.QuantityUsed,
			CalculatedCost: cost,
		}
	}

	totalCost, costPerUnit := costing.CostRecipe(usages, input.TotalYield)
	return rows, totalCost, costPerUnit, nil
}

func validateRecipeInput(input RecipeInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: recipe name is required", ErrInvalidInput)
	}
	if len(input.Ingredients) == 0 {
		return fmt.Errorf("%w: recipe needs at least one ingredient", ErrInvalidInput)
	}
	if !input.TotalYield.IsPositive() {
		return fmt.Errorf("%w: total yield must be positive", ErrInvalidInput)
	}
	if input.YieldUnit != "g" && input.YieldUnit != "un" {
		return fmt.Errorf("%w: yield unit must be g or un", ErrInvalidInput)
	}
	return nil
}

func (s *RecipeService) publish(ctx context.Context, ownerID uuid.UUID, action string, id uuid.UUID) {
	if s.notifier == nil {
		return
	}
	event := datasource.Event{Kind: "recipe", Action: action, ID: id}
	if err := s.notifier.Publish(ctx, ownerID, event); err != nil {
		s.log.Warnw("failed to publish change event", "error", err)
	}
}
