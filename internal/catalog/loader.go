package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/repository"
	"github.com/osse101/gachabox/internal/validation"
)

// File is the on-disk catalog format
type File struct {
	Version string    `json:"version"`
	Boxes   []BoxFile `json:"boxes"`
}

// BoxFile describes one box and its pool, in selection order
type BoxFile struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Cost        int        `json:"cost"`
	Items       []ItemFile `json:"items"`
}

// ItemFile describes one item of a box
type ItemFile struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Rarity      string  `json:"rarity"`
	Weight      float64 `json:"weight"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// LoadFile reads, schema-validates and semantically validates a catalog file
func LoadFile(ctx context.Context, path string, v validation.SchemaValidator) (*File, error) {
	var f File
	if err := v.DecodeFile(path, validation.SchemaCatalog, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "version", f.Version, "boxes", len(f.Boxes))
	return &f, nil
}

// Validate checks rules the schema cannot express, reporting every problem at once
func (f *File) Validate() error {
	var errs []error
	boxIDs := make(map[string]bool)
	itemIDs := make(map[string]bool)

	for _, b := range f.Boxes {
		if boxIDs[b.ID] {
			errs = append(errs, fmt.Errorf("%s: %s", ErrMsgDuplicateBoxID, b.ID))
		}
		boxIDs[b.ID] = true
		if b.Cost < 0 {
			errs = append(errs, fmt.Errorf("box %s: %s", b.ID, ErrMsgNegativeCost))
		}

		for _, it := range b.Items {
			if itemIDs[it.ID] {
				errs = append(errs, fmt.Errorf("%s: %s", ErrMsgDuplicateItemID, it.ID))
			}
			itemIDs[it.ID] = true
			if !domain.RarityTier(it.Rarity).IsValid() {
				errs = append(errs, fmt.Errorf("item %s: %s %q", it.ID, ErrMsgInvalidRarity, it.Rarity))
			}
			if !(it.Weight > 0) {
				errs = append(errs, fmt.Errorf("item %s: %s", it.ID, ErrMsgInvalidWeight))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, errors.Join(errs...))
	}
	return nil
}

// DomainBoxes converts the file into domain boxes with their items attached
func (f *File) DomainBoxes() []domain.Box {
	boxes := make([]domain.Box, 0, len(f.Boxes))
	for _, b := range f.Boxes {
		box := domain.Box{ID: b.ID, Name: b.Name, Description: b.Description, Cost: b.Cost}
		for _, it := range b.Items {
			box.ItemIDs = append(box.ItemIDs, it.ID)
			box.Items = append(box.Items, domain.Item{
				ID:          it.ID,
				BoxID:       b.ID,
				Name:        it.Name,
				Description: it.Description,
				Rarity:      domain.RarityTier(it.Rarity),
				Weight:      it.Weight,
				ImageURL:    it.ImageURL,
			})
		}
		boxes = append(boxes, box)
	}
	return boxes
}

// Seed upserts every box and item of the file. Positions follow file order.
func Seed(ctx context.Context, w repository.CatalogWriter, f *File) error {
	items := 0
	for pos, box := range f.DomainBoxes() {
		if err := w.UpsertBox(ctx, &box, pos); err != nil {
			return fmt.Errorf("seed box %s: %w", box.ID, err)
		}
		for i := range box.Items {
			if err := w.UpsertItem(ctx, &box.Items[i], i); err != nil {
				return fmt.Errorf("seed item %s: %w", box.Items[i].ID, err)
			}
			items++
		}
	}

	logger.FromContext(ctx).Info(LogMsgCatalogSeeded, "boxes", len(f.Boxes), "items", items)
	return nil
}
