package catalog

// Cache key prefixes
const (
	cacheKeyBoxes     = "boxes"
	cacheKeyBoxPrefix = "box:"
	cacheKeyItems     = "items:"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog file loaded"
	LogMsgCatalogSeeded = "Catalog seeded"
	LogMsgCachePurged   = "Catalog cache purged"
)

// Error messages
const (
	ErrMsgDuplicateBoxID  = "duplicate box id"
	ErrMsgDuplicateItemID = "duplicate item id"
	ErrMsgInvalidRarity   = "invalid rarity"
	ErrMsgInvalidWeight   = "item weight must be positive"
	ErrMsgNegativeCost    = "box cost must not be negative"
)
