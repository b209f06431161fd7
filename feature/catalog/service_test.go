package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Budomar/ProductCatalog/feature/catalog/models"
	"github.com/Budomar/ProductCatalog/feature/catalog/snapshot"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SyncPassesOptions(t *testing.T) {
	env := setupTestApp(t)

	_, err := env.service.Sync(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, env.syncer.calls, 1)
	assert.True(t, env.syncer.calls[0].DryRun)
	assert.True(t, env.syncer.calls[0].PurgeStale)
}

func TestService_ProductsCachedUntilSync(t *testing.T) {
	env := setupTestApp(t)
	ctx := context.Background()
	seed(t, env.store, product("A1", "METEOR B30", models.CategoryMeteor, 1))

	first, err := env.service.Products(ctx, store.Filter{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	seed(t, env.store, product("A2", "MK 18", models.CategoryMK, 0))

	cached, err := env.service.Products(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Len(t, cached, 1, "listing is served from cache")

	_, err = env.service.Sync(ctx, true)
	require.NoError(t, err)
	cached, err = env.service.Products(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Len(t, cached, 1, "dry run keeps the cache")

	_, err = env.service.Sync(ctx, false)
	require.NoError(t, err)
	fresh, err := env.service.Products(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestService_FailedSyncKeepsCache(t *testing.T) {
	env := setupTestApp(t)
	ctx := context.Background()
	seed(t, env.store, product("A1", "METEOR B30", models.CategoryMeteor, 1))

	_, err := env.service.Products(ctx, store.Filter{})
	require.NoError(t, err)
	seed(t, env.store, product("A2", "MK 18", models.CategoryMK, 0))

	env.syncer.err = errors.New("boom")
	_, err = env.service.Sync(ctx, false)
	require.Error(t, err)

	cached, err := env.service.Products(ctx, store.Filter{})
	require.NoError(t, err)
	assert.Len(t, cached, 1)
}

func TestListCache_SharesInFlightBuild(t *testing.T) {
	c := newListCache(time.Minute)
	var builds atomic.Int32
	release := make(chan struct{})

	build := func(context.Context) ([]models.Product, error) {
		builds.Add(1)
		<-release
		return []models.Product{{Article: "A1"}}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.get(context.Background(), "k", build)
			assert.NoError(t, err)
			assert.Len(t, got, 1)
		}()
	}

	assert.Eventually(t, func() bool { return builds.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), builds.Load())
}

func TestListCache_ZeroTTLDisablesCaching(t *testing.T) {
	c := newListCache(0)
	var builds int
	build := func(context.Context) ([]models.Product, error) {
		builds++
		return nil, nil
	}

	for i := 0; i < 3; i++ {
		_, err := c.get(context.Background(), "k", build)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, builds)
}

func TestListCache_ErrorsAreNotCached(t *testing.T) {
	c := newListCache(time.Minute)
	_, err := c.get(context.Background(), "k", func(context.Context) ([]models.Product, error) {
		return nil, errors.New("db down")
	})
	require.Error(t, err)

	got, err := c.get(context.Background(), "k", func(context.Context) ([]models.Product, error) {
		return []models.Product{{Article: "A1"}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_ProductCountsViews(t *testing.T) {
	env := setupTestApp(t)
	ctx := context.Background()
	seed(t, env.store, product("A1", "METEOR B30", models.CategoryMeteor, 1))

	p, err := env.service.Product(ctx, " A1 ")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.ViewsCount)

	p, err = env.service.Product(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.ViewsCount)

	missing, err := env.service.Product(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestService_Stats(t *testing.T) {
	env := setupTestApp(t)
	ctx := context.Background()
	seed(t, env.store,
		product("A1", "METEOR B30", models.CategoryMeteor, 1),
		product("A2", "MK 18", models.CategoryMK, 0),
	)

	stats, err := env.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.InStock)
	assert.Nil(t, stats.LastSync)

	ts := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, env.snapshots.Save(ctx, snapshot.Snapshot{LastUpdated: ts}))

	stats, err = env.service.Stats(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats.LastSync)
	assert.True(t, ts.Equal(*stats.LastSync))
}

func TestService_CheckHealth(t *testing.T) {
	tests := []struct {
		name        string
		snapshotAge time.Duration
		writeSnap   bool
		wantStatus  string
	}{
		{"fresh snapshot", time.Hour, true, StatusOK},
		{"stale snapshot", 30 * time.Hour, true, StatusError},
		{"no snapshot", 0, false, StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestApp(t)
			ctx := context.Background()
			seed(t, env.store, product("A1", "METEOR B30", models.CategoryMeteor, 1))
			if tt.writeSnap {
				require.NoError(t, env.snapshots.Save(ctx, snapshot.Snapshot{LastUpdated: time.Now().Add(-tt.snapshotAge)}))
			}

			report, err := env.service.CheckHealth(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, StatusOK, report.Schema.Status)
			assert.Empty(t, report.Schema.MissingColumns)
			assert.Equal(t, int64(1), report.Products)
			assert.Equal(t, tt.writeSnap, report.Snapshot.Present)
		})
	}
}

func TestService_CheckHealth_MissingTable(t *testing.T) {
	env := setupTestApp(t)
	ctx := context.Background()
	require.NoError(t, env.snapshots.Save(ctx, snapshot.Snapshot{LastUpdated: time.Now()}))
	require.NoError(t, env.store.DB().Migrator().DropTable(&models.Product{}))

	report, err := env.service.CheckHealth(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusError, report.Status)
	assert.Equal(t, StatusError, report.Schema.Status)
	assert.Contains(t, report.Schema.MissingColumns, "article")
	assert.Contains(t, report.Schema.MissingColumns, "views_count")
}
