package api

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createIngredientViaAPI(t *testing.T, router *gin.Engine, token, name, unit string, price interface{}) string {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/ingredients", postJSON(t, map[string]interface{}{
		"name":           name,
		"unit":           unit,
		"price_per_unit": price,
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code, "body: %s", w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response["id"].(string)
}

func TestCreateIngredientEndpoint(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	id := createIngredientViaAPI(t, router, token, "Wheat flour", "kg", 4200)
	assert.NotEmpty(t, id)
}

func TestCreateIngredientEndpointRejectsUnknownUnit(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	req := httptest.NewRequest("POST", "/api/v1/ingredients", postJSON(t, map[string]interface{}{
		"name":           "Flour",
		"unit":           "oz",
		"price_per_unit": 100,
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestCreateIngredientEndpointDuplicateName(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	createIngredientViaAPI(t, router, token, "Butter", "kg", 28000)

	req := httptest.NewRequest("POST", "/api/v1/ingredients", postJSON(t, map[string]interface{}{
		"name":           "butter",
		"unit":           "kg",
		"price_per_unit": 30000,
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 409, w.Code)
}

func TestCreateIngredientEndpointLenientPrice(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	// Non-numeric price degrades to zero instead of failing the request
	id := createIngredientViaAPI(t, router, token, "Mystery spice", "gr", "not-a-number")

	req := httptest.NewRequest("GET", "/api/v1/ingredients/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "0", fmt.Sprintf("%v", response["price_per_unit"]))
}

func TestListIngredientsScopedToOwner(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)
	_, otherToken := CreateTestUserAndToken(t, testDB)

	createIngredientViaAPI(t, router, token, "Flour", "kg", 4200)
	createIngredientViaAPI(t, router, token, "Eggs", "un", 650)

	req := httptest.NewRequest("GET", "/api/v1/ingredients", nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	var response map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response["ingredients"])
}

func TestUpdateAndDeleteIngredientEndpoint(t *testing.T) {
	router, testDB := setupTestRouter(t)
	_, token := CreateTestUserAndToken(t, testDB)

	id := createIngredientViaAPI(t, router, token, "Milk", "lt", 3600)

	req := httptest.NewRequest("PUT", "/api/v1/ingredients/"+id, postJSON(t, map[string]interface{}{
		"name":           "Whole milk",
		"unit":           "lt",
		"price_per_unit": 3800,
	}))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	req = httptest.NewRequest("DELETE", "/api/v1/ingredients/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 204, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/ingredients/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}
