package gacha

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/metrics"
	"github.com/osse101/gachabox/internal/repository"
)

// itemsFailingCatalog serves boxes but cannot load item pools
type itemsFailingCatalog struct {
	repository.Catalog
	err error
}

func (c itemsFailingCatalog) GetItemsByBox(context.Context, string) ([]domain.Item, error) {
	return nil, c.err
}

func TestRoll_RecordsFailureReasons(t *testing.T) {
	tests := []struct {
		name    string
		boxID   string
		setup   func(f *fixture)
		wantErr error
		reason  string
	}{
		{
			name:    "unknown box",
			boxID:   "box-missing",
			wantErr: domain.ErrBoxNotFound,
			reason:  ReasonBoxNotFound,
		},
		{
			name:  "item pool unavailable",
			boxID: "box-a",
			setup: func(f *fixture) {
				f.svc.catalog = itemsFailingCatalog{Catalog: f.store, err: domain.ErrStorageUnavailable}
			},
			wantErr: domain.ErrStorageUnavailable,
			reason:  ReasonInternal,
		},
		{
			name:    "insufficient funds",
			boxID:   "box-a",
			wantErr: domain.ErrInsufficientFunds,
			reason:  ReasonInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 10)
			if tt.setup != nil {
				tt.setup(f)
			}
			counter := metrics.RollFailures.WithLabelValues(tt.reason)
			before := testutil.ToFloat64(counter)

			_, err := f.svc.Roll(context.Background(), "u1", tt.boxID)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRoll_ItemPoolFailureLeavesBalance(t *testing.T) {
	f := newFixture(t, 150)
	f.svc.catalog = itemsFailingCatalog{Catalog: f.store, err: errors.New("connection reset")}

	_, err := f.svc.Roll(context.Background(), "u1", "box-a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedGetItems)

	bal, err := f.store.GetBalance(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 150, bal.Coins)
}
