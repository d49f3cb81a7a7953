package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ovenly/costbook/backend/internal/costing"
)

// Ingredient is a priced raw material owned by one account. PricePerUnit is
// the purchase price for one Unit (one kg, one liter, one gram or one piece).
type Ingredient struct {
	ID           uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Unit         costing.Unit    `gorm:"size:2;not null" json:"unit"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric;not null" json:"price_per_unit"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
