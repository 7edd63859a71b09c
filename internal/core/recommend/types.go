package recommend

import (
	"time"

	"drink-recommender/internal/core/catalog"
)

// RecommendedDrink 推薦結果中的酒款快照，附上理由與分數
type RecommendedDrink struct {
	Drink        catalog.Drink `json:"drink"`
	Score        float64       `json:"score"`
	Reason       string        `json:"reason"`
	PairingNotes string        `json:"pairing_notes,omitempty"`
}

// Recommendation 持久化的推薦紀錄，建立後不可變，屬於發起請求的用戶
type Recommendation struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id,omitempty"`
	ImageURL  string             `json:"image_url,omitempty"`
	Occasion  string             `json:"occasion"`
	Tastes    []string           `json:"tastes"`
	Drinks    []RecommendedDrink `json:"drinks"`
	Message   string             `json:"message"`
	CreatedAt time.Time          `json:"created_at"`
}

// CacheEntry 內容定址快取條目：鍵為標準化輸入的確定性雜湊。
// 首次未命中時建立；每次命中更新 HitCount 與 LastUsedAt；
// 本核心不負責刪除，生命週期由外部保留政策管理。
type CacheEntry struct {
	Key        string             `json:"key"`
	Keywords   []string           `json:"keywords"`
	Category   string             `json:"category"`
	Occasion   string             `json:"occasion"`
	Tastes     []string           `json:"tastes"`
	Drinks     []RecommendedDrink `json:"drinks"`
	Message    string             `json:"message"`
	HitCount   int64              `json:"hit_count"`
	CreatedAt  time.Time          `json:"created_at"`
	LastUsedAt time.Time          `json:"last_used_at"`
}

// Request 一次推薦請求的輸入
type Request struct {
	UserID   string   // 空字串代表匿名
	Occasion string   // 可為萬用標籤 "all"
	Tastes   []string
	ImageRef string   // 可選，食物照片（base64 或 URL）
	Keywords []string // 可選，直接指定食物關鍵字時跳過影像分析
}

// Result 一次推薦請求的輸出
type Result struct {
	ID            string             `json:"id,omitempty"`
	Drinks        []RecommendedDrink `json:"drinks"`
	DetectedFoods []string           `json:"detected_foods"`
	Message       string             `json:"message"`
	FromCache     bool               `json:"from_cache"`
	CreatedAt     time.Time          `json:"created_at"`
}

// HistoryPage 歷史查詢結果
type HistoryPage struct {
	Items []Recommendation `json:"items"`
	Total int64            `json:"total"`
}

// GenerationResult 生成式推薦器成功解析後的結果，
// 酒款已重新比對回目錄並附上完整屬性
type GenerationResult struct {
	Drinks  []RecommendedDrink
	Message string
}
