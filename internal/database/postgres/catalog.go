package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/gachabox/internal/domain"
)

const (
	boxSelect = `
		SELECT b.box_id, b.name, b.description, b.cost,
		       COALESCE(array_agg(i.item_id ORDER BY i.position, i.item_id) FILTER (WHERE i.item_id IS NOT NULL), '{}')
		FROM boxes b
		LEFT JOIN items i ON i.box_id = b.box_id`

	getBoxQuery    = boxSelect + ` WHERE b.box_id = $1 GROUP BY b.box_id`
	listBoxesQuery = boxSelect + ` GROUP BY b.box_id ORDER BY b.position, b.box_id`

	getItemsByBoxQuery = `SELECT ` + itemColumns + ` FROM items WHERE box_id = $1 ORDER BY position, item_id`

	upsertBoxQuery = `
		INSERT INTO boxes (box_id, name, description, cost, position)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (box_id) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description,
		    cost = EXCLUDED.cost, position = EXCLUDED.position`

	upsertItemQuery = `
		INSERT INTO items (item_id, box_id, name, description, rarity, weight, image_url, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (item_id) DO UPDATE
		SET box_id = EXCLUDED.box_id, name = EXCLUDED.name, description = EXCLUDED.description,
		    rarity = EXCLUDED.rarity, weight = EXCLUDED.weight, image_url = EXCLUDED.image_url,
		    position = EXCLUDED.position`
)

// CatalogRepository implements repository.Catalog and repository.CatalogWriter for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func scanBox(row pgx.Row) (*domain.Box, error) {
	var b domain.Box
	if err := row.Scan(&b.ID, &b.Name, &b.Description, &b.Cost, &b.ItemIDs); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBox retrieves a box with its ordered item IDs
func (r *CatalogRepository) GetBox(ctx context.Context, boxID string) (*domain.Box, error) {
	box, err := scanBox(r.db.QueryRow(ctx, getBoxQuery, boxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoxNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetBox, err)
	}
	return box, nil
}

// GetItemsByBox returns the item pool of a box in catalog order
func (r *CatalogRepository) GetItemsByBox(ctx context.Context, boxID string) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, getItemsByBoxQuery, boxID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetItems, err)
	}
	items, err := collect(rows, scanItem)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetItems, err)
	}
	return items, nil
}

// ListBoxes returns every box in display order
func (r *CatalogRepository) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	rows, err := r.db.Query(ctx, listBoxesQuery)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListBoxes, err)
	}
	boxes, err := collect(rows, scanBox)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListBoxes, err)
	}
	return boxes, nil
}

// UpsertBox inserts or replaces a box definition
func (r *CatalogRepository) UpsertBox(ctx context.Context, box *domain.Box, position int) error {
	if _, err := r.db.Exec(ctx, upsertBoxQuery, box.ID, box.Name, box.Description, box.Cost, position); err != nil {
		return wrapErr(ErrMsgFailedToUpsertBox, err)
	}
	return nil
}

// UpsertItem inserts or replaces an item definition
func (r *CatalogRepository) UpsertItem(ctx context.Context, item *domain.Item, position int) error {
	_, err := r.db.Exec(ctx, upsertItemQuery,
		item.ID, item.BoxID, item.Name, item.Description, string(item.Rarity), item.Weight, item.ImageURL, position)
	if err != nil {
		return wrapErr(ErrMsgFailedToUpsertItem, err)
	}
	return nil
}
