package history

import (
	"context"
	"encoding/json"
	"fmt"

	"drink-recommender/internal/core/recommend"

	"github.com/go-redis/redis/v8"
)

const (
	recKeyPrefix  = "rec:history:doc:"  // 單筆紀錄
	userKeyPrefix = "rec:history:user:" // 每個用戶的紀錄索引（新到舊）
)

// RedisStore Redis 實作的推薦歷史。每筆紀錄存成 JSON 文件，
// 另以 list 維護每個用戶由新到舊的索引。
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 建立歷史服務
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create 寫入一筆推薦紀錄並加入用戶索引
func (s *RedisStore) Create(ctx context.Context, rec *recommend.Recommendation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	if err := s.client.Set(ctx, recKeyPrefix+rec.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store recommendation: %w", err)
	}

	if rec.UserID != "" {
		if err := s.client.LPush(ctx, userKeyPrefix+rec.UserID, rec.ID).Err(); err != nil {
			return fmt.Errorf("failed to index recommendation: %w", err)
		}
	}
	return nil
}

// ListByUser 以分頁回傳用戶的推薦歷史（新到舊）
func (s *RedisStore) ListByUser(ctx context.Context, userID string, limit, offset int) (*recommend.HistoryPage, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	indexKey := userKeyPrefix + userID

	total, err := s.client.LLen(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	ids, err := s.client.LRange(ctx, indexKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	items := make([]recommend.Recommendation, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetByID(ctx, id)
		if err != nil || rec == nil {
			// 索引指向的文件遺失或壞掉時跳過，不整頁失敗
			continue
		}
		items = append(items, *rec)
	}

	return &recommend.HistoryPage{Items: items, Total: total}, nil
}

// GetByID 依 ID 查詢單筆紀錄，不存在回傳 nil
func (s *RedisStore) GetByID(ctx context.Context, id string) (*recommend.Recommendation, error) {
	data, err := s.client.Get(ctx, recKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}

	var rec recommend.Recommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendation: %w", err)
	}
	return &rec, nil
}
