package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"keybuddy/internal/domain/keysystem"
	"keybuddy/internal/infrastructure/persistence/models"
	"keybuddy/internal/shared/logger"
)

// KeyCatalogRepository serves the fabrikat/koncept reference catalogs
type KeyCatalogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewKeyCatalogRepository creates a new key catalog repository
func NewKeyCatalogRepository(db *gorm.DB, logger logger.Interface) keysystem.CatalogRepository {
	return &KeyCatalogRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the primary catalog ordered by fabrikat then koncept
func (r *KeyCatalogRepository) List(ctx context.Context) ([]keysystem.CatalogEntry, error) {
	var catalogModels []*models.KeyCatalogModel

	if err := r.db.WithContext(ctx).
		Order("fabrikat asc, koncept asc").
		Find(&catalogModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list key catalog: %w", err)
	}

	entries := make([]keysystem.CatalogEntry, 0, len(catalogModels))
	for _, model := range catalogModels {
		entries = append(entries, keysystem.CatalogEntry{Fabrikat: model.Fabrikat, Koncept: model.Koncept})
	}
	return entries, nil
}

// ListSecondary returns the secondary scheme catalog
func (r *KeyCatalogRepository) ListSecondary(ctx context.Context) ([]keysystem.CatalogEntry, error) {
	var catalogModels []*models.KeyCatalog2Model

	if err := r.db.WithContext(ctx).
		Order("fabrikat asc, koncept asc").
		Find(&catalogModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list secondary key catalog: %w", err)
	}

	entries := make([]keysystem.CatalogEntry, 0, len(catalogModels))
	for _, model := range catalogModels {
		entries = append(entries, keysystem.CatalogEntry{Fabrikat: model.Fabrikat, Koncept: model.Koncept})
	}
	return entries, nil
}
