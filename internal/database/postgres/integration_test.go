package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/gachabox/internal/database"
	"github.com/osse101/gachabox/internal/domain"
	"github.com/osse101/gachabox/internal/repository"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, connStr, 10, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return terminate
	}
	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return terminate
}

func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}

// seedBox creates a box with two items under IDs unique to the test
func seedBox(t *testing.T, pool *pgxpool.Pool, cost int) (*domain.Box, []domain.Item) {
	t.Helper()
	ctx := context.Background()
	repo := NewCatalogRepository(pool)
	suffix := uuid.NewString()[:8]

	box := &domain.Box{ID: "box-" + suffix, Name: "Test Box", Cost: cost}
	require.NoError(t, repo.UpsertBox(ctx, box, 0))

	items := []domain.Item{
		{ID: "b-" + suffix, BoxID: box.ID, Name: "B", Rarity: domain.RarityRare, Weight: 10},
		{ID: "a-" + suffix, BoxID: box.ID, Name: "A", Rarity: domain.RarityCommon, Weight: 90},
	}
	// positions put B after A even though B sorts first by ID
	require.NoError(t, repo.UpsertItem(ctx, &items[1], 0))
	require.NoError(t, repo.UpsertItem(ctx, &items[0], 1))
	return box, []domain.Item{items[1], items[0]}
}

func seedUser(t *testing.T, pool *pgxpool.Pool, coins int) string {
	t.Helper()
	id := "user-" + uuid.NewString()
	require.NoError(t, NewUserRepository(pool).CreateUser(context.Background(), &domain.User{ID: id, Username: id}, coins))
	return id
}

func TestCatalogRepository_Integration(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewCatalogRepository(pool)

	box, items := seedBox(t, pool, 100)

	got, err := repo.GetBox(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Cost)
	assert.Equal(t, []string{items[0].ID, items[1].ID}, got.ItemIDs)

	pool2, err := repo.GetItemsByBox(ctx, box.ID)
	require.NoError(t, err)
	require.Len(t, pool2, 2)
	assert.Equal(t, items[0].ID, pool2[0].ID)
	assert.Equal(t, domain.RarityCommon, pool2[0].Rarity)
	assert.Equal(t, 90.0, pool2[0].Weight)

	_, err = repo.GetBox(ctx, "missing-box")
	assert.ErrorIs(t, err, domain.ErrBoxNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	boxes, err := repo.ListBoxes(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, boxes)
}

func TestUserRepository_Integration(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	gacha := NewGachaRepository(pool)

	id := seedUser(t, pool, 150)

	u, err := users.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	// creating again leaves the balance alone
	require.NoError(t, users.CreateUser(ctx, &domain.User{ID: id}, 9999))
	bal, err := gacha.GetBalance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 150, bal.Coins)

	_, err = users.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = gacha.GetBalance(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGachaTx_Integration(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewGachaRepository(pool)

	box, items := seedBox(t, pool, 100)
	userID := seedUser(t, pool, 150)
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("committed roll is visible", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		bal, err := tx.ApplyBalanceDelta(ctx, userID, -100, 100)
		require.NoError(t, err)
		assert.Equal(t, 50, bal.Coins)
		assert.Equal(t, 100, bal.TotalCoinsSpent)

		entry, err := tx.GetInventoryEntryForUpdate(ctx, userID, items[0].ID)
		require.NoError(t, err)
		assert.Nil(t, entry)

		require.NoError(t, tx.UpsertInventoryEntry(ctx, &domain.InventoryEntry{
			UserID: userID, ItemID: items[0].ID, Quantity: 1, RarityScore: 42,
			Rarity: items[0].Rarity, FirstObtainedAt: now, LastObtainedAt: now,
		}))

		pull := &domain.PullRecord{
			ID: uuid.NewString(), UserID: userID, BoxID: box.ID, ItemID: items[0].ID,
			Rarity: items[0].Rarity, RarityScore: 42, Cost: 100, PulledAt: now,
		}
		require.NoError(t, tx.AppendPull(ctx, pull))
		assert.Equal(t, int64(1), pull.Sequence)

		require.NoError(t, tx.Commit(ctx))

		entries, err := repo.GetAllInventoryEntries(ctx, userID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Quantity)
		assert.Equal(t, now, entries[0].FirstObtainedAt)

		pulls, err := repo.GetPulls(ctx, userID)
		require.NoError(t, err)
		require.Len(t, pulls, 1)
		assert.Equal(t, pull.ID, pulls[0].ID)
	})

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		_, err = tx.ApplyBalanceDelta(ctx, userID, -100, 100)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		var ife *domain.InsufficientFundsError
		require.ErrorAs(t, err, &ife)
		assert.Equal(t, 50, ife.Balance)
		assert.Equal(t, 100, ife.Required)
	})

	t.Run("rolled back roll is invisible", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		_, err = tx.ApplyBalanceDelta(ctx, userID, -50, 50)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback(ctx))

		bal, err := repo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 50, bal.Coins)
		assert.Equal(t, 100, bal.TotalCoinsSpent)
	})

	t.Run("unknown user", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		_, err = tx.ApplyBalanceDelta(ctx, "nobody", -1, 1)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestGachaTx_ConcurrentDebits(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewGachaRepository(pool)

	userID := seedUser(t, pool, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := repo.BeginTx(ctx)
			if !assert.NoError(t, err) {
				return
			}
			defer repository.SafeRollback(ctx, tx)
			if _, err := tx.ApplyBalanceDelta(ctx, userID, -100, 100); err != nil {
				return
			}
			assert.NoError(t, tx.Commit(ctx))
		}()
	}
	wg.Wait()

	bal, err := repo.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, bal.Coins)
	assert.Equal(t, 1000, bal.TotalCoinsSpent)
}

func TestAchievementRepository_Integration(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewAchievementRepository(pool)

	userID := seedUser(t, pool, 0)
	now := time.Now().UTC().Truncate(time.Microsecond)

	inserted, err := repo.InsertAchievementProgress(ctx, &domain.UserAchievementProgress{
		UserID: userID, AchievementID: "pulls_10", Progress: 3, CreatedAt: now,
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertAchievementProgress(ctx, &domain.UserAchievementProgress{
		UserID: userID, AchievementID: "pulls_10", Progress: 5, CreatedAt: now,
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	require.NoError(t, repo.UpdateAchievementProgress(ctx, userID, "pulls_10", 7))

	done, err := repo.CompleteAchievementProgress(ctx, userID, "pulls_10", 10, now)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = repo.CompleteAchievementProgress(ctx, userID, "pulls_10", 11, now)
	require.NoError(t, err)
	assert.False(t, done, "completion happens once")

	// completed rows no longer move
	require.NoError(t, repo.UpdateAchievementProgress(ctx, userID, "pulls_10", 99))

	p, err := repo.GetAchievementProgress(ctx, userID, "pulls_10")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 10, p.Progress)
	assert.True(t, p.Completed)
	require.NotNil(t, p.CompletedAt)
	assert.Equal(t, now, *p.CompletedAt)

	missing, err := repo.GetAchievementProgress(ctx, userID, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	t.Run("claim pays once", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		locked, err := tx.GetAchievementProgressForUpdate(ctx, userID, "pulls_10")
		require.NoError(t, err)
		require.NotNil(t, locked)
		assert.False(t, locked.Claimed)

		bal, err := tx.ApplyBalanceDelta(ctx, userID, 100, 0)
		require.NoError(t, err)
		assert.Equal(t, 100, bal.Coins)
		require.NoError(t, tx.MarkClaimed(ctx, userID, "pulls_10", now))
		require.NoError(t, tx.Commit(ctx))

		tx2, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx2)
		assert.ErrorIs(t, tx2.MarkClaimed(ctx, userID, "pulls_10", now), domain.ErrAlreadyClaimed)
	})

	list, err := repo.ListAchievementProgress(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Claimed)
}
