package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hazelkitchen/recipebook/backend/internal/model"
)

// RunMigrations brings the recipes table up to date.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("migrating recipes table: %w", err)
	}
	return nil
}
