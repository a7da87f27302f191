package gacha

import (
	"fmt"
	"math"

	"github.com/osse101/gachabox/internal/domain"
)

// SelectItem picks one item with probability weight/Σweight.
// rnd must return a value in [0, 1). Items are scanned in the given order and the
// first whose cumulative weight reaches r = rnd()*total wins. Zero-weight items are never chosen.
func SelectItem(items []domain.Item, rnd func() float64) (*domain.Item, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, ErrMsgNoItems)
	}

	total := 0.0
	for _, it := range items {
		if math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) || it.Weight < 0 {
			return nil, fmt.Errorf("%w: %s (item %s)", domain.ErrInvalidConfiguration, ErrMsgInvalidWeight, it.ID)
		}
		total += it.Weight
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, ErrMsgZeroTotalWeight)
	}

	r := rnd() * total
	cumulative := 0.0
	last := -1
	for i := range items {
		if items[i].Weight == 0 {
			continue
		}
		last = i
		cumulative += items[i].Weight
		if r <= cumulative {
			item := items[i]
			return &item, nil
		}
	}

	// float rounding can leave r just above the final cumulative sum
	item := items[last]
	return &item, nil
}
