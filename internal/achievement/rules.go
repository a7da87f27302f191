package achievement

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/logger"
	"github.com/osse101/gachabox/internal/validation"
)

// Catalog is an immutable, validated set of achievement rules in display order
type Catalog struct {
	rules []domain.AchievementRule
	byID  map[string]int
}

// NewCatalog validates rules and fills default windows for the opening-pulls rules
func NewCatalog(rules []domain.AchievementRule) (*Catalog, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfiguration, ErrMsgEmptyCatalog)
	}

	c := &Catalog{
		rules: make([]domain.AchievementRule, 0, len(rules)),
		byID:  make(map[string]int, len(rules)),
	}

	var errs []error
	for _, r := range rules {
		switch {
		case r.ID == "":
			errs = append(errs, errors.New(ErrMsgEmptyRuleID))
			continue
		case !knownType(r.Type):
			errs = append(errs, fmt.Errorf("rule %s: %s %q", r.ID, ErrMsgUnknownRuleType, r.Type))
		case r.Requirement < 1:
			errs = append(errs, fmt.Errorf("rule %s: %s", r.ID, ErrMsgInvalidRequirement))
		case r.Reward < 0:
			errs = append(errs, fmt.Errorf("rule %s: %s", r.ID, ErrMsgNegativeReward))
		}
		if _, dup := c.byID[r.ID]; dup {
			errs = append(errs, fmt.Errorf("%s: %s", domain.ErrMsgDuplicateAchievementID, r.ID))
			continue
		}

		if r.Window == 0 {
			switch r.Type {
			case domain.AchievementLuckyStart:
				r.Window = DefaultLuckyStartWindow
			case domain.AchievementQuantumStart:
				r.Window = DefaultQuantumStartWindow
			}
		}
		c.byID[r.ID] = len(c.rules)
		c.rules = append(c.rules, r)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, errors.Join(errs...))
	}
	return c, nil
}

func knownType(t domain.AchievementType) bool {
	switch t {
	case domain.AchievementFirstPull, domain.AchievementPulls,
		domain.AchievementRareItem, domain.AchievementEpicItem,
		domain.AchievementLegendaryItem, domain.AchievementQuantumItem,
		domain.AchievementCollection, domain.AchievementAllRarities,
		domain.AchievementCoinsSpent, domain.AchievementLuckyStart,
		domain.AchievementQuantumStart:
		return true
	}
	return false
}

// Rules returns a copy of every rule
func (c *Catalog) Rules() []domain.AchievementRule {
	return append([]domain.AchievementRule(nil), c.rules...)
}

// Get looks a rule up by ID
func (c *Catalog) Get(id string) (domain.AchievementRule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.AchievementRule{}, false
	}
	return c.rules[i], true
}

// Visible returns every rule with secret ones masked
func (c *Catalog) Visible() []domain.AchievementRule {
	out := make([]domain.AchievementRule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Mask(r)
	}
	return out
}

// Mask hides the name and description of a secret rule
func Mask(r domain.AchievementRule) domain.AchievementRule {
	if r.Secret {
		r.Name = domain.MaskedAchievementName
		r.Description = domain.MaskedAchievementDescription
	}
	return r
}

// catalogFile is the on-disk achievements format
type catalogFile struct {
	Version      string                   `json:"version"`
	Achievements []domain.AchievementRule `json:"achievements"`
}

// LoadCatalog reads and validates a rule file
func LoadCatalog(ctx context.Context, path string, v validation.SchemaValidator) (*Catalog, error) {
	var f catalogFile
	if err := v.DecodeFile(path, validation.SchemaAchievements, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfiguration, err)
	}

	c, err := NewCatalog(f.Achievements)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "version", f.Version, "rules", len(c.rules))
	return c, nil
}

// DefaultCatalog returns the built-in rule table
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("built-in achievement catalog is invalid: %v", err))
	}
	return c
}

var defaultRules = []domain.AchievementRule{
	{ID: "first_pull", Name: "Beginner's Luck", Description: "Open your first box", Type: domain.AchievementFirstPull, Requirement: 1, Reward: 50, Icon: "🎁", Tier: TierBronze},
	{ID: "pulls_10", Name: "Collector", Description: "Open 10 boxes", Type: domain.AchievementPulls, Requirement: 10, Reward: 100, Icon: "📦", Tier: TierBronze},
	{ID: "pulls_50", Name: "Enthusiast", Description: "Open 50 boxes", Type: domain.AchievementPulls, Requirement: 50, Reward: 500, Icon: "📦", Tier: TierSilver},
	{ID: "pulls_100", Name: "Addict", Description: "Open 100 boxes", Type: domain.AchievementPulls, Requirement: 100, Reward: 1000, Icon: "📦", Tier: TierGold},
	{ID: "pulls_500", Name: "Box Legend", Description: "Open 500 boxes", Type: domain.AchievementPulls, Requirement: 500, Reward: 5000, Icon: "👑", Tier: TierPlatinum},
	{ID: "rare_item", Name: "Something Shiny", Description: "Obtain a rare item", Type: domain.AchievementRareItem, Requirement: 1, Reward: 75, Icon: "💎", Tier: TierBronze},
	{ID: "epic_item", Name: "Epic Find", Description: "Obtain an epic item", Type: domain.AchievementEpicItem, Requirement: 1, Reward: 150, Icon: "🔮", Tier: TierSilver},
	{ID: "legendary_item", Name: "Living Legend", Description: "Obtain a legendary item", Type: domain.AchievementLegendaryItem, Requirement: 1, Reward: 300, Icon: "⭐", Tier: TierGold},
	{ID: "quantum_item", Name: "Quantum Anomaly", Description: "Obtain a quantum item", Type: domain.AchievementQuantumItem, Requirement: 1, Reward: 1000, Icon: "⚛️", Tier: TierPlatinum, Secret: true},
	{ID: "collection_10", Name: "Small Collection", Description: "Own 10 different items", Type: domain.AchievementCollection, Requirement: 10, Reward: 200, Icon: "🗃️", Tier: TierSilver},
	{ID: "collection_25", Name: "Curator", Description: "Own 25 different items", Type: domain.AchievementCollection, Requirement: 25, Reward: 500, Icon: "🏛️", Tier: TierGold},
	{ID: "all_rarities", Name: "Rainbow", Description: "Own at least one item of every rarity", Type: domain.AchievementAllRarities, Requirement: 5, Reward: 750, Icon: "🌈", Tier: TierGold},
	{ID: "spend_1000", Name: "Casual Spender", Description: "Spend 1,000 coins", Type: domain.AchievementCoinsSpent, Requirement: 1000, Reward: 100, Icon: "💰", Tier: TierBronze},
	{ID: "spend_10000", Name: "Big Spender", Description: "Spend 10,000 coins", Type: domain.AchievementCoinsSpent, Requirement: 10000, Reward: 1000, Icon: "💰", Tier: TierSilver},
	{ID: "lucky_start", Name: "Lucky Start", Description: "Obtain a legendary item within your first 10 boxes", Type: domain.AchievementLuckyStart, Requirement: 1, Reward: 500, Icon: "🍀", Tier: TierGold, Secret: true, Window: DefaultLuckyStartWindow},
	{ID: "quantum_start", Name: "Quantum Start", Description: "Obtain a quantum item within your first 5 boxes", Type: domain.AchievementQuantumStart, Requirement: 1, Reward: 2000, Icon: "🌌", Tier: TierPlatinum, Secret: true, Window: DefaultQuantumStartWindow},
}
