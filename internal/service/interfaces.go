package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenly/costbook/backend/internal/costing"
	"github.com/ovenly/costbook/backend/internal/models"
	"github.com/ovenly/costbook/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IIngredientService defines the interface for ingredient operations
type IIngredientService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Ingredient, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Ingredient, error)
	Create(ctx context.Context, ownerID uuid.UUID, input IngredientInput) (*models.Ingredient, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input IngredientInput) (*models.Ingredient, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Recipe, error)
	Create(ctx context.Context, ownerID uuid.UUID, input RecipeInput) (*models.Recipe, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input RecipeInput) (*models.Recipe, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Price(ctx context.Context, ownerID, id uuid.UUID, quantitySold decimal.Decimal) (costing.Quote, costing.Ticket, error)
}

// ITicketService defines the interface for receipt rendering operations
type ITicketService interface {
	FormatAmount(amount decimal.Decimal) string
	Render(ticket costing.Ticket) string
	Store(ctx context.Context, ownerID uuid.UUID, ticket costing.Ticket) (rendered, url string, err error)
}
