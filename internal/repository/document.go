package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
	"github.com/hazelkitchen/recipebook/backend/internal/store"
)

// DocumentRepository implements the recipe contract over a whole-document
// store: every operation loads the full collection, mutates it in memory and
// writes it back. There is no locking around the load-modify-save sequence;
// concurrent writers race and the last write wins. Adequate for the low
// request volume this serves.
type DocumentRepository struct {
	store store.DocumentStore
}

// NewDocumentRepository creates a repository over the given document store.
func NewDocumentRepository(s store.DocumentStore) *DocumentRepository {
	return &DocumentRepository{store: s}
}

// ListAll returns every recipe in insertion order. Store failures degrade to
// an empty slice.
func (r *DocumentRepository) ListAll(ctx context.Context) []model.Recipe {
	doc, err := r.store.Load(ctx)
	if err != nil {
		log.Printf("listing recipes: %v", err)
		return []model.Recipe{}
	}
	return doc.Recipes
}

// GetByID returns the recipe with the given id, or nil when absent.
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	for i := range doc.Recipes {
		if doc.Recipes[i].ID == id {
			return &doc.Recipes[i], nil
		}
	}
	return nil, nil
}

// Create assigns the next id and the creation timestamp, persists the full
// collection and returns the stored record.
func (r *DocumentRepository) Create(ctx context.Context, draft RecipeDraft) (*model.Recipe, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}

	rec := draft.toRecipe()
	rec.ID = doc.NextID
	rec.CreatedAt = time.Now().UTC()

	doc.Recipes = append(doc.Recipes, rec)
	doc.NextID++

	if err := r.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving recipes: %w", err)
	}
	return &rec, nil
}

// Update merges the provided fields over the existing record and persists the
// result. Returns nil when the id is unknown.
func (r *DocumentRepository) Update(ctx context.Context, id int64, patch RecipePatch) (*model.Recipe, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}

	idx := -1
	for i := range doc.Recipes {
		if doc.Recipes[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	patch.Apply(&doc.Recipes[idx])

	if err := r.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving recipes: %w", err)
	}
	updated := doc.Recipes[idx]
	return &updated, nil
}

// Delete removes the recipe with the given id. Returns false when no such
// recipe exists; that is a normal outcome, not an error.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading recipes: %w", err)
	}

	kept := doc.Recipes[:0]
	for _, rec := range doc.Recipes {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(doc.Recipes) {
		return false, nil
	}
	doc.Recipes = kept

	if err := r.store.Save(ctx, doc); err != nil {
		return false, fmt.Errorf("saving recipes: %w", err)
	}
	return true, nil
}
