package api

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
	"github.com/hazelkitchen/recipebook/backend/internal/repository"
	"github.com/hazelkitchen/recipebook/backend/internal/service"
)

// RecipeHandler maps the recipe HTTP surface onto repository calls.
type RecipeHandler struct {
	repo   repository.RecipeRepository
	images service.ImageStore
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(repo repository.RecipeRepository, images service.ImageStore) *RecipeHandler {
	return &RecipeHandler{
		repo:   repo,
		images: images,
	}
}

// RegisterRoutes registers the recipe routes. The guards (auth, rate
// limiting) apply to the mutating routes only; reads stay public.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, guards ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)

		protected := recipes.Group("")
		protected.Use(guards...)
		{
			protected.POST("", h.CreateRecipe)
			protected.PUT("/:id", h.UpdateRecipe)
			protected.DELETE("/:id", h.DeleteRecipe)
		}
	}
}

// ListRecipes returns every recipe. Store failures degrade to an empty list
// so the public pages render an empty state rather than an error.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes := h.repo.ListAll(c.Request.Context())
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns a single recipe by id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe creates a recipe from a JSON body or from the admin form's
// multipart payload (fields plus optional image/chibi file parts).
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var draft repository.RecipeDraft

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		d, err := h.draftFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft = *d
	} else {
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	recipe, err := h.repo.Create(c.Request.Context(), draft)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe merges the provided fields over an existing recipe. Fields
// absent from the payload are left untouched; id and createdAt never change.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var patch repository.RecipePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe. Deleting an unknown id is a 404, not a
// server error.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *RecipeHandler) draftFromForm(c *gin.Context) (*repository.RecipeDraft, error) {
	draft := &repository.RecipeDraft{
		Title:              c.PostForm("title"),
		Author:             c.PostForm("author"),
		Description:        c.PostForm("description"),
		ServingSuggestions: c.PostForm("servingSuggestions"),
		Ingredients:        splitLines(c.PostForm("ingredients")),
		Instructions:       splitLines(c.PostForm("instructions")),
	}

	imageURL, err := h.storeFormImage(c, "image")
	if err != nil {
		return nil, err
	}
	draft.ImageURL = imageURL

	chibiURL, err := h.storeFormImage(c, "chibi")
	if err != nil {
		return nil, err
	}
	draft.ChibiURL = chibiURL

	return draft, nil
}

func (h *RecipeHandler) storeFormImage(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil || file.Size == 0 {
		return "", nil
	}

	data, contentType, err := readFormFile(file)
	if err != nil {
		return "", err
	}

	return h.images.Save(c.Request.Context(), service.UploadFilename(file.Filename), data, contentType)
}

func readFormFile(file *multipart.FileHeader) ([]byte, string, error) {
	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}

func splitLines(s string) model.StringList {
	return model.StringList(strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")).Clean()
}
