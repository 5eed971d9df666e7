package items

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketplace/pkg/cache"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Item{}))
	return db
}

// memoryCache is an in-process cache.Service used to observe cache-aside
// behavior without a Redis instance.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := m.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = data
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestService_CRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, CreateItemRequest{Name: "Sports Shoes", Price: 250000})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetItem(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Sports Shoes", got.Name)
	require.Equal(t, 250000, got.Price)

	updated, err := svc.UpdateItem(ctx, created.ID, UpdateItemRequest{Price: intPtr(199000)})
	require.NoError(t, err)
	require.Equal(t, "Sports Shoes", updated.Name)
	require.Equal(t, 199000, updated.Price)

	updated, err = svc.UpdateItem(ctx, created.ID, UpdateItemRequest{Name: strPtr("Trail Shoes")})
	require.NoError(t, err)
	require.Equal(t, "Trail Shoes", updated.Name)
	require.Equal(t, 199000, updated.Price)

	require.NoError(t, svc.DeleteItem(ctx, created.ID))

	_, err = svc.GetItem(ctx, created.ID)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	_, err := svc.GetItem(ctx, 9999)
	require.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.UpdateItem(ctx, 9999, UpdateItemRequest{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrItemNotFound)

	require.ErrorIs(t, svc.DeleteItem(ctx, 9999), ErrItemNotFound)
}

func TestService_ListUsesCache(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(NewRepository(db))
	mem := newMemoryCache()
	svc.SetCacheService(mem, time.Hour)
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, CreateItemRequest{Name: "Cap", Price: 50000})
	require.NoError(t, err)

	list, err := svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Contains(t, mem.entries, listCacheKey)

	// A stale cached copy wins until it is invalidated
	mem.entries[listCacheKey] = []byte(`{"items":[]}`)
	list, err = svc.ListItems(ctx)
	require.NoError(t, err)
	require.Empty(t, list.Items)

	// Mutations invalidate the listing
	_, err = svc.CreateItem(ctx, CreateItemRequest{Name: "Plain T-Shirt", Price: 75000})
	require.NoError(t, err)
	require.NotContains(t, mem.entries, listCacheKey)

	list, err = svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
}
