package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
)

// GormRepository implements the recipe contract over a managed table with a
// native identity column and creation timestamp; id assignment is delegated
// to the store and isolation to the database.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository over the given database handle.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ListAll returns every recipe in creation order, id as tie-break. Store
// failures degrade to an empty slice.
func (r *GormRepository) ListAll(ctx context.Context) []model.Recipe {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&recipes).Error; err != nil {
		log.Printf("listing recipes: %v", err)
		return []model.Recipe{}
	}
	return recipes
}

// GetByID returns the recipe with the given id, or nil when absent.
func (r *GormRepository) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching recipe %d: %w", id, err)
	}
	return &recipe, nil
}

// Create persists a new recipe; the database assigns id and timestamp.
func (r *GormRepository) Create(ctx context.Context, draft RecipeDraft) (*model.Recipe, error) {
	recipe := draft.toRecipe()
	if err := r.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}
	return &recipe, nil
}

// Update merges the provided fields over the existing row. Returns nil when
// the id is unknown.
func (r *GormRepository) Update(ctx context.Context, id int64, patch RecipePatch) (*model.Recipe, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	cols := patch.Columns()
	if len(cols) > 0 {
		err := r.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return nil, fmt.Errorf("updating recipe %d: %w", id, err)
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the recipe with the given id. Returns false when no such
// row exists.
func (r *GormRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("deleting recipe %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
