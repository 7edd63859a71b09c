package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"drink-recommender/internal/core/recommend"
	"drink-recommender/internal/infrastructure/config"
	"drink-recommender/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// keyPrefix redis 鍵前綴
const keyPrefix = "rec:cache:"

// RedisStore Redis 實作的推薦快取。精確鍵比對，不做模糊查詢。
// 同一鍵的並發未命中可能各自呼叫生成器並重複寫入，視為無害的
// last-write-wins，不是一致性問題。
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore 建立快取服務
func NewRedisStore(client *redis.Client, cfg *config.CacheConfig) *RedisStore {
	return &RedisStore{
		client: client,
		config: cfg,
	}
}

// Get 獲取快取條目；未命中回傳 recommend.ErrCacheMiss
func (s *RedisStore) Get(ctx context.Context, key string) (*recommend.CacheEntry, error) {
	if !s.config.Enabled || s.client == nil {
		return nil, recommend.ErrCacheMiss
	}

	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("recommendation", key)
			return nil, recommend.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var entry recommend.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// 內容壞掉視同未命中，讓呼叫端重新生成覆蓋
		common.LogWarn("快取內容解析失敗，視為未命中",
			zap.Error(err),
			zap.String("鍵", key),
		)
		return nil, recommend.ErrCacheMiss
	}

	common.LogCacheHit("recommendation", key)
	return &entry, nil
}

// Put 寫入快取條目
func (s *RedisStore) Put(ctx context.Context, entry *recommend.CacheEntry) error {
	if !s.config.Enabled || s.client == nil {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+entry.Key, data, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	common.LogInfo("快取已儲存",
		zap.String("鍵", entry.Key),
	)
	return nil
}

// Touch 命中時更新 HitCount 與 LastUsedAt。
// 讀改寫不加鎖：計數只是統計用途，並發下的少算可以接受。
func (s *RedisStore) Touch(ctx context.Context, key string) error {
	if !s.config.Enabled || s.client == nil {
		return nil
	}

	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return recommend.ErrCacheMiss
		}
		return fmt.Errorf("failed to get cache for touch: %w", err)
	}

	var entry recommend.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return fmt.Errorf("failed to unmarshal cache for touch: %w", err)
	}

	entry.HitCount++
	entry.LastUsedAt = time.Now()

	updated, err := json.Marshal(&entry)
	if err != nil {
		return fmt.Errorf("failed to marshal touched entry: %w", err)
	}

	// KeepTTL 保留原本的到期時間
	if err := s.client.Set(ctx, keyPrefix+key, updated, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("failed to touch cache: %w", err)
	}
	return nil
}
