package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRecipeViaAPI(t *testing.T, router *gin.Engine, token string, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/recipes", postJSON(t, body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code, "body: %s", w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func decimalField(t *testing.T, m map[string]interface{}, key string) decimal.Decimal {
	t.Helper()
	raw, ok := m[key]
	require.True(t, ok, "missing field %s", key)
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		require.NoError(t, err)
		return d
	case float64:
		return decimal.NewFromFloat(v)
	default:
		t.Fatalf("unexpected type %T for %s", raw, key)
		return decimal.Zero
	}
}

func TestCreateRecipeEndpoint(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	flourID := createIngredientViaAPI(t, router, token, "Flour", "kg", 10000)
	sugarID := createIngredientViaAPI(t, router, token, "Sugar", "kg", 10000)

	recipe := createRecipeViaAPI(t, router, token, map[string]interface{}{
		"name":        "Pound cake",
		"total_yield": 1000,
		"yield_unit":  "g",
		"ingredients": []map[string]interface{}{
			{"ingredient_id": flourID, "quantity_used": 200},
			{"ingredient_id": sugarID, "quantity_used": 200},
		},
	})

	assert.True(t, decimalField(t, recipe, "total_cost").Equal(decimal.NewFromInt(4000)))
	assert.True(t, decimalField(t, recipe, "cost_per_unit").Equal(decimal.NewFromInt(4)))
	assert.Len(t, recipe["ingredients"].([]interface{}), 2)
}

func TestCreateRecipeEndpointValidation(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	flourID := createIngredientViaAPI(t, router, token, "Flour", "kg", 10000)

	// Empty ingredient list
	req := httptest.NewRequest("POST", "/api/v1/recipes", postJSON(t, map[string]interface{}{
		"name":        "Bread",
		"total_yield": 1000,
		"ingredients": []map[string]interface{}{},
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)

	// Non-positive yield
	req = httptest.NewRequest("POST", "/api/v1/recipes", postJSON(t, map[string]interface{}{
		"name":        "Bread",
		"total_yield": 0,
		"ingredients": []map[string]interface{}{
			{"ingredient_id": flourID, "quantity_used": 200},
		},
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)

	// Non-numeric yield degrades to zero, which is then rejected
	req = httptest.NewRequest("POST", "/api/v1/recipes", postJSON(t, map[string]interface{}{
		"name":        "Bread",
		"total_yield": "plenty",
		"ingredients": []map[string]interface{}{
			{"ingredient_id": flourID, "quantity_used": 200},
		},
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestPriceRecipeEndpoint(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	flourID := createIngredientViaAPI(t, router, token, "Flour", "kg", 10000)
	sugarID := createIngredientViaAPI(t, router, token, "Sugar", "kg", 10000)

	recipe := createRecipeViaAPI(t, router, token, map[string]interface{}{
		"name":        "Pound cake",
		"total_yield": 1000,
		"yield_unit":  "g",
		"ingredients": []map[string]interface{}{
			{"ingredient_id": flourID, "quantity_used": 200},
			{"ingredient_id": sugarID, "quantity_used": 200},
		},
	})
	recipeID := recipe["id"].(string)

	req := httptest.NewRequest("POST", "/api/v1/recipes/"+recipeID+"/price", postJSON(t, map[string]interface{}{
		"quantity_sold": 100,
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code, "body: %s", w.Body.String())

	var quote map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.True(t, decimalField(t, quote, "real_cost").Equal(decimal.NewFromInt(400)))
	assert.True(t, decimalField(t, quote, "suggested_price").Equal(decimal.NewFromInt(1200)))
	assert.True(t, decimalField(t, quote, "profit").Equal(decimal.NewFromInt(800)))
}

func TestTicketRecipeEndpoint(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	flourID := createIngredientViaAPI(t, router, token, "Flour", "kg", 10000)
	recipe := createRecipeViaAPI(t, router, token, map[string]interface{}{
		"name":        "Bread",
		"total_yield": 1000,
		"yield_unit":  "g",
		"ingredients": []map[string]interface{}{
			{"ingredient_id": flourID, "quantity_used": 200},
		},
	})
	recipeID := recipe["id"].(string)

	req := httptest.NewRequest("POST", "/api/v1/recipes/"+recipeID+"/ticket", postJSON(t, map[string]interface{}{
		"quantity_sold": 100,
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code, "body: %s", w.Body.String())

	var ticket TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(t, "Bread", ticket.RecipeName)
	assert.Equal(t, "g", ticket.UnitLabel)
	assert.Contains(t, ticket.Rendered, "Bread")
	assert.Empty(t, ticket.URL)
}

func TestRecipeNotFoundForOtherOwner(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	flourID := createIngredientViaAPI(t, router, token, "Flour", "kg", 10000)
	recipe := createRecipeViaAPI(t, router, token, map[string]interface{}{
		"name":        "Bread",
		"total_yield": 1000,
		"yield_unit":  "g",
		"ingredients": []map[string]interface{}{
			{"ingredient_id": flourID, "quantity_used": 200},
		},
	})
	recipeID := recipe["id"].(string)

	req := httptest.NewRequest("GET", "/api/v1/recipes/"+recipeID, nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	flourID := createIngredientViaAPI(t, router, token, "Flour", "kg", 10000)
	recipe := createRecipeViaAPI(t, router, token, map[string]interface{}{
		"name":        "Bread",
		"total_yield": 1000,
		"yield_unit":  "g",
		"ingredients": []map[string]interface{}{
			{"ingredient_id": flourID, "quantity_used": 200},
		},
	})
	recipeID := recipe["id"].(string)

	req := httptest.NewRequest("DELETE", "/api/v1/recipes/"+recipeID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 204, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/recipes/"+recipeID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}
