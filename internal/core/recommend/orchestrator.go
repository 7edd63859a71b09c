package recommend

import (
	"context"
	"time"

	"drink-recommender/internal/core/catalog"
	"drink-recommender/internal/core/pairing"
	"drink-recommender/internal/pkg/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service 推薦服務的協調層：權益閘門 → 食物分析 → 快取查詢 →
// 生成式推薦 → 規則式備援 → 歷史持久化，整條主流程都在這裡。
type Service struct {
	catalog    catalog.Provider
	analyzer   Analyzer
	generator  Generator
	cacheStore CacheStore
	history    HistoryStore
	gate       Gate
	normalizer *pairing.Normalizer
	resolver   *pairing.Resolver
	engine     *pairing.Engine
	rand       Rand
	genTimeout time.Duration

	// cacheKey 注入便於測試，預設用內容定址雜湊
	cacheKey func(keywords []string, category, occasion string, tastes []string) string
}

// Options Service 的協作者集合
type Options struct {
	Catalog    catalog.Provider
	Analyzer   Analyzer
	Generator  Generator
	Cache      CacheStore
	History    HistoryStore
	Gate       Gate
	Engine     *pairing.Engine
	Rand       Rand
	GenTimeout time.Duration
	CacheKey   func(keywords []string, category, occasion string, tastes []string) string
}

// NewService 建立推薦服務
func NewService(opts Options) *Service {
	if opts.Rand == nil {
		opts.Rand = defaultRand{}
	}
	if opts.Engine == nil {
		opts.Engine = pairing.NewEngine(pairing.DefaultWeights(), nil)
	}
	if opts.GenTimeout <= 0 {
		opts.GenTimeout = 30 * time.Second
	}
	return &Service{
		catalog:    opts.Catalog,
		analyzer:   opts.Analyzer,
		generator:  opts.Generator,
		cacheStore: opts.Cache,
		history:    opts.History,
		gate:       opts.Gate,
		normalizer: pairing.NewNormalizer(),
		resolver:   pairing.NewResolver(),
		engine:     opts.Engine,
		rand:       opts.Rand,
		genTimeout: opts.GenTimeout,
		cacheKey:   opts.CacheKey,
	}
}

// CreateRecommendation 主流程。權益閘門先行；分析失敗降級為通用
// 佔位分析；快取命中直接回傳並更新命中統計；生成失敗走規則式
// 備援且不寫入快取。
func (s *Service) CreateRecommendation(ctx context.Context, req *Request) (*Result, error) {
	// 權益閘門：任何推薦工作開始之前
	if err := s.gate.Authorize(ctx, req.UserID); err != nil {
		return nil, err
	}

	analysis := s.analyzeFood(ctx, req)

	key := s.buildKey(analysis, req)
	if entry := s.lookupCache(ctx, key); entry != nil {
		return s.finish(ctx, req, analysis, entry.Drinks, entry.Message, true)
	}

	drinks, message, generated := s.generate(ctx, analysis, req)
	if !generated {
		drinks, message = s.fallback(ctx, analysis, req)
	}

	// 只有生成式結果值得快取，備援結果在本地重算很便宜
	if generated && s.cacheStore != nil {
		s.storeCache(ctx, key, analysis, req, drinks, message)
	}

	return s.finish(ctx, req, analysis, drinks, message, false)
}

// GetHistory 查詢用戶的推薦歷史，依建立時間新到舊
func (s *Service) GetHistory(ctx context.Context, userID string, limit, offset int) (*HistoryPage, error) {
	if userID == "" {
		return nil, common.ErrUnauthorized
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.history.ListByUser(ctx, userID, limit, offset)
}

// GetDetail 查詢單筆推薦。不存在回 404；帶了身份但不是紀錄
// 擁有者回 403。匿名查詢不做擁有權檢查，直接回傳。
func (s *Service) GetDetail(ctx context.Context, userID, id string) (*Recommendation, error) {
	rec, err := s.history.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, common.ErrNotFound
	}
	if userID != "" && rec.UserID != userID {
		return nil, common.ErrForbidden
	}
	return rec, nil
}

// analyzeFood 取得食物分析：明確給了關鍵字就直接採用；有圖片就
// 交給分析器，分析失敗降級為通用佔位（軟失敗，不中斷主流程）。
func (s *Service) analyzeFood(ctx context.Context, req *Request) *pairing.FoodAnalysis {
	if len(req.Keywords) > 0 {
		return &pairing.FoodAnalysis{
			Keywords: req.Keywords,
			Category: "general",
		}
	}
	if req.ImageRef == "" || s.analyzer == nil {
		return pairing.GenericAnalysis()
	}
	analysis, err := s.analyzer.Analyze(ctx, req.ImageRef)
	if err != nil || analysis == nil || len(analysis.Keywords) == 0 {
		common.LogWarn("食物分析失敗，改用通用佔位分析", zap.Error(err))
		return pairing.GenericAnalysis()
	}
	return analysis
}

func (s *Service) buildKey(analysis *pairing.FoodAnalysis, req *Request) string {
	if s.cacheKey == nil {
		return ""
	}
	return s.cacheKey(analysis.Keywords, analysis.Category, req.Occasion, req.Tastes)
}

// lookupCache 查詢快取並在命中時更新統計；任何快取層錯誤都只記錄
func (s *Service) lookupCache(ctx context.Context, key string) *CacheEntry {
	if s.cacheStore == nil || key == "" {
		return nil
	}
	entry, err := s.cacheStore.Get(ctx, key)
	if err != nil {
		if err != ErrCacheMiss {
			common.LogWarn("快取查詢失敗，視為未命中", zap.Error(err))
		}
		common.LogCacheMiss("recommendation", key)
		return nil
	}
	common.LogCacheHit("recommendation", key)
	if err := s.cacheStore.Touch(ctx, key); err != nil {
		common.LogWarn("快取命中統計更新失敗", zap.Error(err))
	}
	return entry
}

// generate 呼叫生成式推薦器，失敗回傳 generated=false 觸發備援
func (s *Service) generate(ctx context.Context, analysis *pairing.FoodAnalysis, req *Request) ([]RecommendedDrink, string, bool) {
	if s.generator == nil {
		return nil, "", false
	}
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	result, err := s.generator.Recommend(genCtx, analysis, req.Occasion, req.Tastes)
	if err != nil {
		common.LogWarn("生成式推薦失敗，改走規則式備援", zap.Error(err))
		return nil, "", false
	}
	return result.Drinks, result.Message, true
}

// fallback 規則式備援：標準化 → 規則解析 → 候選過濾 → 評分排名。
// 保證回傳非空結果，是整條流程的最後一道防線。
func (s *Service) fallback(ctx context.Context, analysis *pairing.FoodAnalysis, req *Request) ([]RecommendedDrink, string) {
	drinks, err := s.catalog.ListDrinks(ctx)
	if err != nil || len(drinks) == 0 {
		common.LogError("酒款目錄讀取失敗", zap.Error(err))
		return nil, pickMessage(s.rand, req.Occasion)
	}

	menus := s.normalizer.Normalize(analysis.Keywords)
	rules := s.resolver.Resolve(menus)
	candidates := pairing.FilterCandidates(drinks, req.Occasion, req.Tastes)
	scores := s.engine.Rank(candidates, rules, req.Occasion, req.Tastes)

	byID := make(map[string]catalog.Drink, len(candidates))
	for _, d := range candidates {
		byID[d.ID] = d
	}

	out := make([]RecommendedDrink, 0, len(scores))
	for _, sc := range scores {
		d, ok := byID[sc.DrinkID]
		if !ok {
			continue
		}
		out = append(out, RecommendedDrink{
			Drink:  d,
			Score:  sc.Total,
			Reason: sc.Reason,
		})
	}

	common.LogInfo("規則式備援完成",
		zap.Int("candidates", len(candidates)),
		zap.Int("recommended", len(out)),
	)
	return out, pickMessage(s.rand, req.Occasion)
}

// storeCache 寫入快取，失敗只記錄不影響回應
func (s *Service) storeCache(ctx context.Context, key string, analysis *pairing.FoodAnalysis, req *Request, drinks []RecommendedDrink, message string) {
	if key == "" {
		return
	}
	now := time.Now()
	entry := &CacheEntry{
		Key:        key,
		Keywords:   analysis.Keywords,
		Category:   analysis.Category,
		Occasion:   req.Occasion,
		Tastes:     req.Tastes,
		Drinks:     drinks,
		Message:    message,
		HitCount:   0,
		CreatedAt:  now,
		LastUsedAt: now,
	}
	if err := s.cacheStore.Put(ctx, entry); err != nil {
		common.LogWarn("快取寫入失敗", zap.String("key", key), zap.Error(err))
	}
}

// finish 組裝結果並為已登入用戶持久化歷史
func (s *Service) finish(ctx context.Context, req *Request, analysis *pairing.FoodAnalysis, drinks []RecommendedDrink, message string, fromCache bool) (*Result, error) {
	result := &Result{
		Drinks:        drinks,
		DetectedFoods: analysis.Keywords,
		Message:       message,
		FromCache:     fromCache,
		CreatedAt:     time.Now(),
	}

	// 匿名請求不留歷史
	if req.UserID != "" && s.history != nil {
		rec := &Recommendation{
			ID:        uuid.New().String(),
			UserID:    req.UserID,
			ImageURL:  req.ImageRef,
			Occasion:  req.Occasion,
			Tastes:    req.Tastes,
			Drinks:    drinks,
			Message:   message,
			CreatedAt: result.CreatedAt,
		}
		if err := s.history.Create(ctx, rec); err != nil {
			common.LogWarn("推薦歷史寫入失敗", zap.String("user_id", req.UserID), zap.Error(err))
		} else {
			result.ID = rec.ID
		}
	}

	return result, nil
}
