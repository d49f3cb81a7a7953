package api

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LenientDecimal decodes a JSON number or numeric string, degrading to
// zero on malformed input instead of rejecting the whole request. Costing
// treats zero quantities as contributing nothing, so a bad number in one
// row never aborts a save.
type LenientDecimal struct {
	decimal.Decimal
}

func (d *LenientDecimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		d.Decimal = decimal.Zero
		return nil
	}
	d.Decimal = v
	return nil
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type IngredientRequest struct {
	Name         string         `json:"name" binding:"required"`
	Unit         string         `json:"unit" binding:"required"`
	PricePerUnit LenientDecimal `json:"price_per_unit"`
}

type RecipeUsageRequest struct {
	IngredientID uuid.UUID      `json:"ingredient_id" binding:"required"`
	QuantityUsed LenientDecimal `json:"quantity_used"`
}

type RecipeRequest struct {
	Name        string               `json:"name" binding:"required"`
	TotalYield  LenientDecimal       `json:"total_yield"`
	YieldUnit   string               `json:"yield_unit"`
	Ingredients []RecipeUsageRequest `json:"ingredients"`
}

type PriceRequest struct {
	QuantitySold LenientDecimal `json:"quantity_sold"`
}

type PriceResponse struct {
	RealCost       decimal.Decimal `json:"real_cost"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Profit         decimal.Decimal `json:"profit"`
}

type TicketResponse struct {
	RecipeName     string          `json:"recipe_name"`
	QuantitySold   decimal.Decimal `json:"quantity_sold"`
	UnitLabel      string          `json:"unit_label"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Rendered       string          `json:"rendered"`
	URL            string          `json:"url,omitempty"`
}
