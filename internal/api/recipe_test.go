package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
	"github.com/hazelkitchen/recipebook/backend/internal/repository"
	"github.com/hazelkitchen/recipebook/backend/internal/service"
	"github.com/hazelkitchen/recipebook/backend/internal/store"
)

func setupTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploadDir := t.TempDir()
	repo := repository.NewDocumentRepository(store.NewMemoryStore())

	router := gin.New()
	NewUploadsHandler(uploadDir).RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	v1.GET("/health", HealthCheck)
	NewRecipeHandler(repo, service.NewLocalImageStore(uploadDir)).RegisterRoutes(v1)

	return router, uploadDir
}

func createRecipe(t *testing.T, router *gin.Engine, body map[string]interface{}) model.Recipe {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/recipes", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	return recipe
}

func TestCreateRecipeJSON(t *testing.T) {
	router, _ := setupTestRouter(t)

	recipe := createRecipe(t, router, map[string]interface{}{
		"title":        "Soup",
		"author":       "A",
		"ingredients":  []string{"2 carrots", "", "1 onion"},
		"instructions": []string{"Chop", "Simmer"},
	})

	assert.Positive(t, recipe.ID)
	assert.False(t, recipe.CreatedAt.IsZero())
	assert.Equal(t, "Soup", recipe.Title)
	assert.Equal(t, model.StringList{"2 carrots", "1 onion"}, recipe.Ingredients)
}

func TestListRecipes(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/recipes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	created := createRecipe(t, router, map[string]interface{}{"title": "Soup", "author": "A"})

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/recipes", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var recipes []model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, created.ID, recipes[0].ID)
}

func TestGetRecipe(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createRecipe(t, router, map[string]interface{}{"title": "Soup", "author": "A"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", fmt.Sprintf("/api/v1/recipes/%d", created.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, created.ID, recipe.ID)
}

func TestGetRecipeNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/recipes/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecipeInvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/recipes/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipePartial(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createRecipe(t, router, map[string]interface{}{
		"title":       "Old",
		"author":      "A",
		"description": "Keep me",
	})

	body := bytes.NewReader([]byte(`{"title":"New"}`))
	req := httptest.NewRequest("PUT", fmt.Sprintf("/api/v1/recipes/%d", created.ID), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, created.ID, recipe.ID)
	assert.Equal(t, "New", recipe.Title)
	assert.Equal(t, "A", recipe.Author)
	assert.Equal(t, "Keep me", recipe.Description)
	assert.True(t, created.CreatedAt.Equal(recipe.CreatedAt))
}

func TestUpdateRecipeNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("PUT", "/api/v1/recipes/999", bytes.NewReader([]byte(`{"title":"New"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipe(t *testing.T) {
	router, _ := setupTestRouter(t)
	created := createRecipe(t, router, map[string]interface{}{"title": "Soup", "author": "A"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", fmt.Sprintf("/api/v1/recipes/%d", created.ID), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"])

	// Gone now, so a second delete is a 404
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", fmt.Sprintf("/api/v1/recipes/%d", created.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", fmt.Sprintf("/api/v1/recipes/%d", created.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeMultipartWithImage(t *testing.T) {
	router, _ := setupTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Soup"))
	require.NoError(t, mw.WriteField("author", "A"))
	require.NoError(t, mw.WriteField("ingredients", "2 carrots\n\n1 onion"))
	require.NoError(t, mw.WriteField("instructions", "Chop\nSimmer"))
	part, err := mw.CreateFormFile("image", "soup.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/v1/recipes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, model.StringList{"2 carrots", "1 onion"}, recipe.Ingredients)
	assert.True(t, strings.HasPrefix(recipe.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(recipe.ImageURL, ".png"))
	assert.Empty(t, recipe.ChibiURL)

	// The stored image is served back by the uploads endpoint
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", recipe.ImageURL, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "not-really-a-png", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "image/png")
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
