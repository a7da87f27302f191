package achievement

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/validation"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	rules := c.Rules()
	require.Len(t, rules, 16)
	assert.Equal(t, "first_pull", rules[0].ID)

	lucky, ok := c.Get("lucky_start")
	require.True(t, ok)
	assert.Equal(t, DefaultLuckyStartWindow, lucky.Window)
	assert.True(t, lucky.Secret)

	rainbow, ok := c.Get("all_rarities")
	require.True(t, ok)
	assert.Equal(t, 5, rainbow.Requirement)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCatalog_RulesReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	rules := c.Rules()
	rules[0].Reward = 999999

	first, _ := c.Get("first_pull")
	assert.Equal(t, 50, first.Reward)
}

func TestCatalog_VisibleMasksSecrets(t *testing.T) {
	for _, r := range DefaultCatalog().Visible() {
		if r.Secret {
			assert.Equal(t, domain.MaskedAchievementName, r.Name, r.ID)
			assert.Equal(t, domain.MaskedAchievementDescription, r.Description, r.ID)
			continue
		}
		assert.NotEqual(t, domain.MaskedAchievementName, r.Name, r.ID)
	}
}

func TestNewCatalog_DefaultsWindows(t *testing.T) {
	c, err := NewCatalog([]domain.AchievementRule{
		{ID: "l", Type: domain.AchievementLuckyStart, Requirement: 1},
		{ID: "q", Type: domain.AchievementQuantumStart, Requirement: 1},
		{ID: "q3", Type: domain.AchievementQuantumStart, Requirement: 1, Window: 3},
		{ID: "p", Type: domain.AchievementPulls, Requirement: 2},
	})
	require.NoError(t, err)

	l, _ := c.Get("l")
	q, _ := c.Get("q")
	q3, _ := c.Get("q3")
	p, _ := c.Get("p")
	assert.Equal(t, DefaultLuckyStartWindow, l.Window)
	assert.Equal(t, DefaultQuantumStartWindow, q.Window)
	assert.Equal(t, 3, q3.Window)
	assert.Zero(t, p.Window)
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		rules []domain.AchievementRule
		want  string
	}{
		{"empty", nil, ErrMsgEmptyCatalog},
		{"missing id", []domain.AchievementRule{{Type: domain.AchievementPulls, Requirement: 1}}, ErrMsgEmptyRuleID},
		{"unknown type", []domain.AchievementRule{{ID: "x", Type: "DANCE", Requirement: 1}}, ErrMsgUnknownRuleType},
		{"zero requirement", []domain.AchievementRule{{ID: "x", Type: domain.AchievementPulls}}, ErrMsgInvalidRequirement},
		{"negative reward", []domain.AchievementRule{{ID: "x", Type: domain.AchievementPulls, Requirement: 1, Reward: -1}}, ErrMsgNegativeReward},
		{"duplicate", []domain.AchievementRule{
			{ID: "x", Type: domain.AchievementPulls, Requirement: 1},
			{ID: "x", Type: domain.AchievementPulls, Requirement: 2},
		}, domain.ErrMsgDuplicateAchievementID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.rules)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCatalog_ProjectFile(t *testing.T) {
	c, err := LoadCatalog(context.Background(), filepath.Join("..", "..", "configs", "achievements.json"), validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().Rules(), c.Rules())
}

func TestLoadCatalog_Invalid(t *testing.T) {
	v := validation.NewSchemaValidator()
	dir := t.TempDir()

	unknownField := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknownField, []byte(`{"version":"1","achievements":[{"id":"a","name":"A","description":"d","type":"PULLS","requirement":1,"reward":1,"colour":"red"}]}`), 0o600))
	_, err := LoadCatalog(context.Background(), unknownField, v)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	dup := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(`{"version":"1","achievements":[
		{"id":"a","name":"A","description":"d","type":"PULLS","requirement":1,"reward":1},
		{"id":"a","name":"B","description":"d","type":"PULLS","requirement":2,"reward":1}]}`), 0o600))
	_, err = LoadCatalog(context.Background(), dup, v)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), domain.ErrMsgDuplicateAchievementID)
}
