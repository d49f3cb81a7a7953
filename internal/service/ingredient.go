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

// IngredientInput carries the user-editable fields of an ingredient.
type IngredientInput struct {
	Name         string
	Unit         costing.Unit
	PricePerUnit decimal.Decimal
}

// IngredientService handles owner-scoped ingredient operations.
type IngredientService struct {
	db       *gorm.DB
	notifier datasource.Notifier
	log      *logger.Logger
}

func NewIngredientService(db *gorm.DB, notifier datasource.Notifier, log *logger.Logger) *IngredientService {
	return &IngredientService{db: db, notifier: notifier, log: log}
}

// List returns all ingredients of the owner.
func (s *IngredientService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("name").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// Get returns one ingredient of the owner.
func (s *IngredientService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", ownerID, id).First(&ingredient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Create validates and persists a new ingredient for the owner.
func (s *IngredientService) Create(ctx context.Context, ownerID uuid.UUID, input IngredientInput) (*models.Ingredient, error) {
	if err := s.validate(ctx, ownerID, uuid.Nil, input); err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		UserID:       ownerID,
		Name:         input.Name,
		Unit:         input.Unit,
		PricePerUnit: input.PricePerUnit,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}

	s.log.Infow("ingredient created", "ingredient_id", ingredient.ID, "owner_id", ownerID)
	s.publish(ctx, ownerID, "created", ingredient.ID)
	return &ingredient, nil
}

// Update validates and overwrites an existing ingredient in place.
func (s *IngredientService) Update(ctx context.Context, ownerID, id uuid.UUID, input IngredientInput) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, ownerID, id, input); err != nil {
		return nil, err
	}

	ingredient.Name = input.Name
	ingredient.Unit = input.Unit
	ingredient.PricePerUnit = input.PricePerUnit
	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}

	s.publish(ctx, ownerID, "updated", id)
	return ingredient, nil
}

// Delete removes the ingredient unconditionally. Recipes referencing it
// keep their usage rows; costing treats such references as contributing
// zero from then on.
func (s *IngredientService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", ownerID, id).Delete(&models.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.log.Infow("ingredient deleted", "ingredient_id", id, "owner_id", ownerID)
	s.publish(ctx, ownerID, "deleted", id)
	return nil
}

// validate enforces the ingredient invariants: non-empty name, a unit from
// the closed set, a non-negative price and per-owner name uniqueness
// (case-insensitive, excluding the ingredient itself on edit).
func (s *IngredientService) validate(ctx context.Context, ownerID, selfID uuid.UUID, input IngredientInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: ingredient name is required", ErrInvalidInput)
	}
	if !input.Unit.Valid() {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, input.Unit)
	}
	if input.PricePerUnit.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	var count int64
	query := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", ownerID, input.Name)
	if selfID != uuid.Nil {
		query = query.Where("id <> ?", selfID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}
	return nil
}

func (s *IngredientService) publish(ctx context.Context, ownerID uuid.UUID, action string, id uuid.UUID) {
	if s.notifier == nil {
		return
	}
	event := datasource.Event{Kind: "ingredient", Action: action, ID: id}
	if err := s.notifier.Publish(ctx, ownerID, event); err != nil {
		s.log.Warnw("failed to publish change event", "error", err)
	}
}
