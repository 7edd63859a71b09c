package recommend

import (
	"context"
	"errors"

	"drink-recommender/internal/core/pairing"
)

// ErrGenerationFailed 生成式推薦失敗的統一訊號：網路錯誤、超時、
// 格式錯誤、空結果都歸於此類，觸發規則式備援。
var ErrGenerationFailed = errors.New("generation failed")

// ErrCacheMiss 快取未命中
var ErrCacheMiss = errors.New("cache miss")

// Analyzer 食物分析協作者。失敗時呼叫端以通用佔位分析代替（軟失敗）。
type Analyzer interface {
	Analyze(ctx context.Context, imageRef string) (*pairing.FoodAnalysis, error)
}

// Generator 生成式推薦協作者。失敗必須與「零筆推薦」可區分，
// 兩者在這裡都以 ErrGenerationFailed 包裝回報。
type Generator interface {
	Recommend(ctx context.Context, analysis *pairing.FoodAnalysis, occasion string, tastes []string) (*GenerationResult, error)
}

// CacheStore 內容定址快取。Put 失敗由呼叫端記錄後吞掉，不得影響回應。
type CacheStore interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Put(ctx context.Context, entry *CacheEntry) error
	// Touch 命中時更新 HitCount 與 LastUsedAt
	Touch(ctx context.Context, key string) error
}

// HistoryStore 推薦歷史
type HistoryStore interface {
	Create(ctx context.Context, rec *Recommendation) error
	ListByUser(ctx context.Context, userID string, limit, offset int) (*HistoryPage, error)
	GetByID(ctx context.Context, id string) (*Recommendation, error)
}

// Gate 權益閘門：在任何推薦工作開始前決定這次呼叫能否進行
type Gate interface {
	// Authorize 授權失敗回傳 common.ErrQuotaExceeded 或 common.ErrNoCredits
	Authorize(ctx context.Context, userID string) error
}
