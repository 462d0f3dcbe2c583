package repository

import (
	"fmt"

	"github.com/hazelkitchen/recipebook/backend/config"
	"github.com/hazelkitchen/recipebook/backend/internal/database"
	"github.com/hazelkitchen/recipebook/backend/internal/store"
)

// FromConfig builds the repository selected by STORE_BACKEND. Call sites
// never branch on the backend themselves.
func FromConfig(cfg *config.Config) (RecipeRepository, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		return NewDocumentRepository(store.NewMemoryStore()), nil
	case config.StoreFile:
		return NewDocumentRepository(store.NewFileStore(cfg.DocumentPath)), nil
	case config.StoreBlob:
		return NewDocumentRepository(store.NewBlobStore(cfg.BlobURL)), nil
	case config.StorePostgres:
		db, err := database.New(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			return nil, err
		}
		return NewGormRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
