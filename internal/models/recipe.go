package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recipe is a composition of ingredient usages plus the cost figures frozen
// at save time. TotalCost and CostPerUnit are recomputed on every save and
// never adjusted when an underlying ingredient price changes later.
type Recipe struct {
	ID          uuid.UUID          `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	TotalYield  decimal.Decimal    `gorm:"type:numeric;not null" json:"total_yield"`
	YieldUnit   string             `gorm:"size:2;not null;default:'g'" json:"yield_unit"`
	TotalCost   decimal.Decimal    `gorm:"type:numeric;not null" json:"total_cost"`
	CostPerUnit decimal.Decimal    `gorm:"type:numeric;not null" json:"cost_per_unit"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient is one usage line of a recipe. IngredientID is a plain
// reference without a foreign key constraint: ingredients may be deleted
// while still referenced, and the line then survives as a dangling row
// whose frozen CalculatedCost keeps the recipe's history intact.
type RecipeIngredient struct {
	ID             uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	RecipeID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"recipe_id"`
	IngredientID   uuid.UUID       `gorm:"type:uuid;not null" json:"ingredient_id"`
	QuantityUsed   decimal.Decimal `gorm:"type:numeric;not null" json:"quantity_used"`
	CalculatedCost decimal.Decimal `gorm:"type:numeric;not null" json:"calculated_cost"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
