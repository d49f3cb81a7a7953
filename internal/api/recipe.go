package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/costbook/backend/internal/service"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	ticketService service.ITicketService
}

func NewRecipeHandler(recipeService service.IRecipeService, ticketService service.ITicketService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		ticketService: ticketService,
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), userID, recipeInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), userID, id, recipeInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PriceRecipe computes the sale economics for a quantity of the recipe.
func (h *RecipeHandler) PriceRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, _, err := h.recipeService.Price(c.Request.Context(), userID, id, req.QuantitySold.Decimal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PriceResponse{
		RealCost:       quote.RealCost,
		SuggestedPrice: quote.SuggestedPrice,
		Profit:         quote.Profit,
	})
}

// TicketRecipe prices a sale and renders the printable receipt for it.
func (h *RecipeHandler) TicketRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, ticket, err := h.recipeService.Price(c.Request.Context(), userID, id, req.QuantitySold.Decimal)
	if err != nil {
		respondError(c, err)
		return
	}

	rendered, url, err := h.ticketService.Store(c.Request.Context(), userID, ticket)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TicketResponse{
		RecipeName:     ticket.RecipeName,
		QuantitySold:   ticket.QuantitySold,
		UnitLabel:      ticket.UnitLabel,
		SuggestedPrice: ticket.SuggestedPrice,
		Rendered:       rendered,
		URL:            url,
	})
}

func recipeInput(req RecipeRequest) service.RecipeInput {
	yieldUnit := req.YieldUnit
	if yieldUnit == "" {
		yieldUnit = "g"
	}
	input := service.RecipeInput{
		Name:       req.Name,
		TotalYield: req.TotalYield.Decimal,
		YieldUnit:  yieldUnit,
	}
	for _, u := range req.Ingredients {
		input.Ingredients = append(input.Ingredients, service.UsageInput{
			IngredientID: u.IngredientID,
			QuantityUsed: u.QuantityUsed.Decimal,
		})
	}
	return input
}
