package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

// Document key prefixes. Every mutable record is one versioned document.
const (
	prefixBalance   = "balance:"
	prefixInventory = "inv:"
	prefixPulls     = "pulls:"
	prefixProgress  = "ach:"
)

func balanceKey(userID string) string           { return prefixBalance + userID }
func inventoryKey(userID, itemID string) string { return prefixInventory + userID + ":" + itemID }
func pullsKey(userID string) string             { return prefixPulls + userID }
func progressKey(userID, achID string) string   { return prefixProgress + userID + ":" + achID }

type boxRecord struct {
	box      domain.Box
	position int
}

type itemRecord struct {
	item     domain.Item
	position int
}

// Store is an in-process implementation of every repository interface.
// Transactions are optimistic: they remember the version of each document they
// read and fail on commit with domain.ErrTransactionConflict if any changed.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users map[string]domain.User
	boxes map[string]boxRecord
	items map[string]itemRecord

	docs     map[string]any
	versions map[string]uint64
}

// NewStore creates an empty store. A nil clock uses time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:      now,
		users:    make(map[string]domain.User),
		boxes:    make(map[string]boxRecord),
		items:    make(map[string]itemRecord),
		docs:     make(map[string]any),
		versions: make(map[string]uint64),
	}
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error { return nil }

// Gacha returns the store as a repository.Gacha
func (s *Store) Gacha() repository.Gacha { return gachaRepo{s} }

// Achievements returns the store as a repository.Achievement
func (s *Store) Achievements() repository.Achievement { return achievementRepo{s} }

func (s *Store) clock() time.Time { return s.now().UTC() }

// put writes a document and bumps its version. Caller holds s.mu.
func (s *Store) put(key string, doc any) {
	s.docs[key] = doc
	s.versions[key]++
}

// ---- Catalog ----

// GetBox retrieves a box with its ordered item IDs
func (s *Store) GetBox(_ context.Context, boxID string) (*domain.Box, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.boxes[boxID]
	if !ok {
		return nil, domain.ErrBoxNotFound
	}
	box := rec.box
	box.ItemIDs = itemIDs(s.itemsOf(boxID))
	return &box, nil
}

// GetItemsByBox returns the item pool of a box in catalog order
func (s *Store) GetItemsByBox(_ context.Context, boxID string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsOf(boxID), nil
}

// ListBoxes returns every box in display order
func (s *Store) ListBoxes(_ context.Context) ([]domain.Box, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := make([]boxRecord, 0, len(s.boxes))
	for _, rec := range s.boxes {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].position != recs[j].position {
			return recs[i].position < recs[j].position
		}
		return recs[i].box.ID < recs[j].box.ID
	})

	boxes := make([]domain.Box, 0, len(recs))
	for _, rec := range recs {
		box := rec.box
		box.ItemIDs = itemIDs(s.itemsOf(box.ID))
		boxes = append(boxes, box)
	}
	return boxes, nil
}

// UpsertBox inserts or replaces a box definition
func (s *Store) UpsertBox(_ context.Context, box *domain.Box, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *box
	b.ItemIDs, b.Items = nil, nil
	s.boxes[box.ID] = boxRecord{box: b, position: position}
	return nil
}

// UpsertItem inserts or replaces an item definition
func (s *Store) UpsertItem(_ context.Context, item *domain.Item, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boxes[item.BoxID]; !ok {
		return domain.ErrBoxNotFound
	}
	s.items[item.ID] = itemRecord{item: *item, position: position}
	return nil
}

// itemsOf returns the items of a box ordered by position then ID. Caller holds s.mu.
func (s *Store) itemsOf(boxID string) []domain.Item {
	recs := make([]itemRecord, 0)
	for _, rec := range s.items {
		if rec.item.BoxID == boxID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].position != recs[j].position {
			return recs[i].position < recs[j].position
		}
		return recs[i].item.ID < recs[j].item.ID
	})
	items := make([]domain.Item, len(recs))
	for i, rec := range recs {
		items[i] = rec.item
	}
	return items
}

func itemIDs(items []domain.Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// ---- Users ----

// CreateUser inserts the user and its balance. Existing users are left untouched.
func (s *Store) CreateUser(_ context.Context, user *domain.User, startingCoins int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return nil
	}
	now := s.clock()
	u := *user
	u.CreatedAt = now
	s.users[user.ID] = u
	s.put(balanceKey(user.ID), domain.UserBalance{UserID: user.ID, Coins: startingCoins, UpdatedAt: now})
	return nil
}

// GetUser retrieves a user by ID
func (s *Store) GetUser(_ context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// ---- Shared reads ----

// GetBalance retrieves the balance of a user
func (s *Store) GetBalance(_ context.Context, userID string) (*domain.UserBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[balanceKey(userID)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	b := doc.(domain.UserBalance)
	return &b, nil
}

// GetAllInventoryEntries returns every inventory entry of a user ordered by first acquisition
func (s *Store) GetAllInventoryEntries(_ context.Context, userID string) ([]domain.InventoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := inventoryKey(userID, "")
	entries := make([]domain.InventoryEntry, 0)
	for key, doc := range s.docs {
		if strings.HasPrefix(key, prefix) {
			entries = append(entries, doc.(domain.InventoryEntry))
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].FirstObtainedAt.Equal(entries[j].FirstObtainedAt) {
			return entries[i].FirstObtainedAt.Before(entries[j].FirstObtainedAt)
		}
		return entries[i].ItemID < entries[j].ItemID
	})
	return entries, nil
}

// GetPulls returns the draw log of a user ordered by sequence
func (s *Store) GetPulls(_ context.Context, userID string) ([]domain.PullRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[pullsKey(userID)]
	if !ok {
		return []domain.PullRecord{}, nil
	}
	return append([]domain.PullRecord(nil), doc.([]domain.PullRecord)...), nil
}

// ---- Achievement progress ----

// ListAchievementProgress returns every progress row of a user ordered by achievement ID
func (s *Store) ListAchievementProgress(_ context.Context, userID string) ([]domain.UserAchievementProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := progressKey(userID, "")
	list := make([]domain.UserAchievementProgress, 0)
	for key, doc := range s.docs {
		if strings.HasPrefix(key, prefix) {
			list = append(list, doc.(domain.UserAchievementProgress))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].AchievementID < list[j].AchievementID })
	return list, nil
}

// GetAchievementProgress retrieves one progress row, nil when absent
func (s *Store) GetAchievementProgress(_ context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[progressKey(userID, achievementID)]
	if !ok {
		return nil, nil
	}
	p := doc.(domain.UserAchievementProgress)
	return &p, nil
}

// InsertAchievementProgress creates the row unless it already exists
func (s *Store) InsertAchievementProgress(_ context.Context, p *domain.UserAchievementProgress) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey(p.UserID, p.AchievementID)
	if _, ok := s.docs[key]; ok {
		return false, nil
	}
	row := *p
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.clock()
	}
	s.put(key, row)
	return true, nil
}

// CompleteAchievementProgress completes the row if it is not completed yet
func (s *Store) CompleteAchievementProgress(_ context.Context, userID, achievementID string, progress int, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey(userID, achievementID)
	doc, ok := s.docs[key]
	if !ok {
		return false, nil
	}
	row := doc.(domain.UserAchievementProgress)
	if row.Completed {
		return false, nil
	}
	at = at.UTC()
	row.Progress = progress
	row.Completed = true
	row.CompletedAt = &at
	s.put(key, row)
	return true, nil
}

// UpdateAchievementProgress stores new progress on an incomplete row
func (s *Store) UpdateAchievementProgress(_ context.Context, userID, achievementID string, progress int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey(userID, achievementID)
	doc, ok := s.docs[key]
	if !ok {
		return nil
	}
	row := doc.(domain.UserAchievementProgress)
	if row.Completed || row.Progress == progress {
		return nil
	}
	row.Progress = progress
	s.put(key, row)
	return nil
}

// ---- Repository views ----

type gachaRepo struct{ *Store }

// BeginTx starts a new optimistic transaction
func (r gachaRepo) BeginTx(context.Context) (repository.GachaTx, error) {
	return r.newTx(), nil
}

type achievementRepo struct{ *Store }

// BeginTx starts a new optimistic transaction
func (r achievementRepo) BeginTx(context.Context) (repository.AchievementTx, error) {
	return r.newTx(), nil
}

var (
	_ repository.Catalog       = (*Store)(nil)
	_ repository.CatalogWriter = (*Store)(nil)
	_ repository.User          = (*Store)(nil)
	_ repository.Gacha         = gachaRepo{}
	_ repository.Achievement   = achievementRepo{}
	_ repository.GachaTx       = (*Tx)(nil)
	_ repository.AchievementTx = (*Tx)(nil)
)
