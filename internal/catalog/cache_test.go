package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gachabox/internal/domain"
)

// MockCatalog is a testify mock of repository.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetBox(ctx context.Context, boxID string) (*domain.Box, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}

func (m *MockCatalog) GetItemsByBox(ctx context.Context, boxID string) ([]domain.Item, error) {
	args := m.Called(ctx, boxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalog) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Box), args.Error(1)
}

func TestCachedCatalog_GetBox(t *testing.T) {
	ctx := context.Background()
	next := new(MockCatalog)
	box := &domain.Box{ID: "b", Cost: 10, ItemIDs: []string{"x"}}
	next.On("GetBox", ctx, "b").Return(box, nil).Once()

	c := NewCachedCatalog(next, 16, time.Minute)

	first, err := c.GetBox(ctx, "b")
	require.NoError(t, err)
	second, err := c.GetBox(ctx, "b")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	next.AssertExpectations(t)

	// callers cannot corrupt the cached copy
	second.ItemIDs[0] = "mutated"
	third, err := c.GetBox(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "x", third.ItemIDs[0])
}

func TestCachedCatalog_MissingBoxNotCached(t *testing.T) {
	ctx := context.Background()
	next := new(MockCatalog)
	next.On("GetBox", ctx, "nope").Return(nil, domain.ErrBoxNotFound).Twice()

	c := NewCachedCatalog(next, 16, time.Minute)

	_, err := c.GetBox(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrBoxNotFound)
	_, err = c.GetBox(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrBoxNotFound)

	next.AssertExpectations(t)
	assert.Equal(t, 0, c.Len())
}

func TestCachedCatalog_ItemsAndPurge(t *testing.T) {
	ctx := context.Background()
	next := new(MockCatalog)
	items := []domain.Item{{ID: "x", Weight: 1}, {ID: "y", Weight: 2}}
	next.On("GetItemsByBox", ctx, "b").Return(items, nil).Twice()
	next.On("ListBoxes", ctx).Return([]domain.Box{{ID: "b"}}, nil).Once()

	c := NewCachedCatalog(next, 16, time.Minute)

	got, err := c.GetItemsByBox(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, items, got)
	_, err = c.GetItemsByBox(ctx, "b")
	require.NoError(t, err)

	boxes, err := c.ListBoxes(ctx)
	require.NoError(t, err)
	assert.Len(t, boxes, 1)
	_, err = c.ListBoxes(ctx)
	require.NoError(t, err)

	c.Purge(ctx)
	assert.Equal(t, 0, c.Len())
	_, err = c.GetItemsByBox(ctx, "b")
	require.NoError(t, err)

	next.AssertExpectations(t)
}

func TestCachedCatalog_Expiry(t *testing.T) {
	ctx := context.Background()
	next := new(MockCatalog)
	next.On("ListBoxes", ctx).Return([]domain.Box{}, nil).Twice()

	c := NewCachedCatalog(next, 16, 20*time.Millisecond)

	_, err := c.ListBoxes(ctx)
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)
	_, err = c.ListBoxes(ctx)
	require.NoError(t, err)

	next.AssertExpectations(t)
}
