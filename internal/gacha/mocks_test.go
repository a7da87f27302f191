package gacha

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

// MockGachaRepository is a testify mock of repository.Gacha
type MockGachaRepository struct {
	mock.Mock
}

func (m *MockGachaRepository) GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBalance), args.Error(1)
}

func (m *MockGachaRepository) GetAllInventoryEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockGachaRepository) GetPulls(ctx context.Context, userID string) ([]domain.PullRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRecord), args.Error(1)
}

func (m *MockGachaRepository) BeginTx(ctx context.Context) (repository.GachaTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GachaTx), args.Error(1)
}

// MockGachaTx is a testify mock of repository.GachaTx
type MockGachaTx struct {
	mock.Mock
}

func (m *MockGachaTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGachaTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGachaTx) GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBalance), args.Error(1)
}

func (m *MockGachaTx) GetInventoryEntryForUpdate(ctx context.Context, userID, itemID string) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockGachaTx) UpsertInventoryEntry(ctx context.Context, entry *domain.InventoryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockGachaTx) ApplyBalanceDelta(ctx context.Context, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error) {
	args := m.Called(ctx, userID, coinsDelta, spentDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBalance), args.Error(1)
}

func (m *MockGachaTx) AppendPull(ctx context.Context, pull *domain.PullRecord) error {
	args := m.Called(ctx, pull)
	if seq, ok := args.Get(1).(int64); ok {
		pull.Sequence = seq
	}
	return args.Error(0)
}
