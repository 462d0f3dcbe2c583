// Package repository exposes the uniform CRUD contract for recipes,
// independent of the backing store. Two implementations exist: a
// whole-document repository over a store.DocumentStore and a row-store
// repository over GORM. Callers see the same semantics from both.
package repository

import (
	"context"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
)

// RecipeDraft carries the writable fields of a new recipe. The id and the
// creation timestamp are assigned by the repository (or by the row store),
// never by the caller.
type RecipeDraft struct {
	Title              string           `json:"title"`
	Author             string           `json:"author"`
	Description        string           `json:"description"`
	ServingSuggestions string           `json:"servingSuggestions"`
	Ingredients        model.StringList `json:"ingredients"`
	Instructions       model.StringList `json:"instructions"`
	ImageURL           string           `json:"imageUrl"`
	ChibiURL           string           `json:"chibiUrl"`
}

func (d RecipeDraft) toRecipe() model.Recipe {
	return model.Recipe{
		Title:              d.Title,
		Author:             d.Author,
		Description:        d.Description,
		ServingSuggestions: d.ServingSuggestions,
		Ingredients:        d.Ingredients.Clean(),
		Instructions:       d.Instructions.Clean(),
		ImageURL:           d.ImageURL,
		ChibiURL:           d.ChibiURL,
	}
}

// RecipePatch carries a partial update. Nil fields are left untouched; the
// id and creation timestamp can never be patched.
type RecipePatch struct {
	Title              *string           `json:"title"`
	Author             *string           `json:"author"`
	Description        *string           `json:"description"`
	ServingSuggestions *string           `json:"servingSuggestions"`
	Ingredients        *model.StringList `json:"ingredients"`
	Instructions       *model.StringList `json:"instructions"`
	ImageURL           *string           `json:"imageUrl"`
	ChibiURL           *string           `json:"chibiUrl"`
}

// Apply merges the provided fields over the recipe, field by field.
func (p RecipePatch) Apply(r *model.Recipe) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Author != nil {
		r.Author = *p.Author
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.ServingSuggestions != nil {
		r.ServingSuggestions = *p.ServingSuggestions
	}
	if p.Ingredients != nil {
		r.Ingredients = p.Ingredients.Clean()
	}
	if p.Instructions != nil {
		r.Instructions = p.Instructions.Clean()
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}
	if p.ChibiURL != nil {
		r.ChibiURL = *p.ChibiURL
	}
}

// Columns returns the provided fields as a column map for row-store updates.
func (p RecipePatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.ServingSuggestions != nil {
		cols["serving_suggestions"] = *p.ServingSuggestions
	}
	if p.Ingredients != nil {
		cols["ingredients"] = p.Ingredients.Clean()
	}
	if p.Instructions != nil {
		cols["instructions"] = p.Instructions.Clean()
	}
	if p.ImageURL != nil {
		cols["image_url"] = *p.ImageURL
	}
	if p.ChibiURL != nil {
		cols["chibi_url"] = *p.ChibiURL
	}
	return cols
}

// RecipeRepository is the CRUD contract the rest of the application consumes.
//
// Absence is a normal outcome, not an error: GetByID and Update return
// (nil, nil) for unknown ids, Delete returns (false, nil). ListAll never
// fails; it degrades to an empty slice on store errors, logging the failure.
type RecipeRepository interface {
	ListAll(ctx context.Context) []model.Recipe
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
	Create(ctx context.Context, draft RecipeDraft) (*model.Recipe, error)
	Update(ctx context.Context, id int64, patch RecipePatch) (*model.Recipe, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
