package achievement

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

// MockAchievementRepository is a testify mock of repository.Achievement
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) GetBalance(ctx context.Context, userID string) (*domain.UserBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBalance), args.Error(1)
}

func (m *MockAchievementRepository) GetPulls(ctx context.Context, userID string) ([]domain.PullRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PullRecord), args.Error(1)
}

func (m *MockAchievementRepository) GetAllInventoryEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockAchievementRepository) ListAchievementProgress(ctx context.Context, userID string) ([]domain.UserAchievementProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAchievementProgress), args.Error(1)
}

func (m *MockAchievementRepository) GetAchievementProgress(ctx context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error) {
	args := m.Called(ctx, userID, achievementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAchievementProgress), args.Error(1)
}

func (m *MockAchievementRepository) InsertAchievementProgress(ctx context.Context, progress *domain.UserAchievementProgress) (bool, error) {
	args := m.Called(ctx, progress)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) CompleteAchievementProgress(ctx context.Context, userID, achievementID string, progress int, at time.Time) (bool, error) {
	args := m.Called(ctx, userID, achievementID, progress, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementRepository) UpdateAchievementProgress(ctx context.Context, userID, achievementID string, progress int) error {
	return m.Called(ctx, userID, achievementID, progress).Error(0)
}

func (m *MockAchievementRepository) BeginTx(ctx context.Context) (repository.AchievementTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.AchievementTx), args.Error(1)
}

// MockAchievementTx is a testify mock of repository.AchievementTx
type MockAchievementTx struct {
	mock.Mock
}

func (m *MockAchievementTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAchievementTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAchievementTx) GetAchievementProgressForUpdate(ctx context.Context, userID, achievementID string) (*domain.UserAchievementProgress, error) {
	args := m.Called(ctx, userID, achievementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAchievementProgress), args.Error(1)
}

func (m *MockAchievementTx) ApplyBalanceDelta(ctx context.Context, userID string, coinsDelta, spentDelta int) (*domain.UserBalance, error) {
	args := m.Called(ctx, userID, coinsDelta, spentDelta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBalance), args.Error(1)
}

func (m *MockAchievementTx) MarkClaimed(ctx context.Context, userID, achievementID string, at time.Time) error {
	return m.Called(ctx, userID, achievementID, at).Error(0)
}
