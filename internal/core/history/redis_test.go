package history

import (
	"context"
	"testing"
	"time"

	"drink-recommender/internal/core/recommend"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client), client
}

func testRecommendation(id, userID string) *recommend.Recommendation {
	return &recommend.Recommendation{
		ID:        id,
		UserID:    userID,
		Occasion:  "party",
		Tastes:    []string{"refreshing"},
		Message:   "乾杯",
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestCreateAndGetByID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	rec := testRecommendation("rec-1", "u1")
	require.NoError(t, store.Create(ctx, rec))

	got, err := store.GetByID(ctx, "rec-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "乾杯", got.Message)
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListByUserNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testRecommendation("rec-1", "u1")))
	require.NoError(t, store.Create(ctx, testRecommendation("rec-2", "u1")))
	require.NoError(t, store.Create(ctx, testRecommendation("rec-3", "u2")))

	page, err := store.ListByUser(ctx, "u1", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "rec-2", page.Items[0].ID, "索引應由新到舊")
	assert.Equal(t, "rec-1", page.Items[1].ID)
}

func TestListByUserPagination(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"rec-1", "rec-2", "rec-3"} {
		require.NoError(t, store.Create(ctx, testRecommendation(id, "u1")))
	}

	page, err := store.ListByUser(ctx, "u1", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "rec-2", page.Items[0].ID)
}

func TestListByUserSkipsMissingDocs(t *testing.T) {
	store, client := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testRecommendation("rec-1", "u1")))
	require.NoError(t, store.Create(ctx, testRecommendation("rec-2", "u1")))

	// 外部保留政策刪掉文件但索引還在
	require.NoError(t, client.Del(ctx, recKeyPrefix+"rec-1").Err())

	page, err := store.ListByUser(ctx, "u1", 10, 0)
	require.NoError(t, err, "索引與文件不一致時不該讓整頁失敗")
	require.Len(t, page.Items, 1)
	assert.Equal(t, "rec-2", page.Items[0].ID)
}
