package repository

import (
	"context"

	"github.com/osse101/gachabox/internal/domain"
)

// Catalog defines read access to boxes and their item pools.
// Items are returned in catalog order (position, then item ID) so selection is reproducible.
type Catalog interface {
	// GetBox returns domain.ErrBoxNotFound when the box does not exist
	GetBox(ctx context.Context, boxID string) (*domain.Box, error)
	GetItemsByBox(ctx context.Context, boxID string) ([]domain.Item, error)
	ListBoxes(ctx context.Context) ([]domain.Box, error)
}

// CatalogWriter is used by seeding only; the engine never writes the catalog
type CatalogWriter interface {
	UpsertBox(ctx context.Context, box *domain.Box, position int) error
	UpsertItem(ctx context.Context, item *domain.Item, position int) error
}
