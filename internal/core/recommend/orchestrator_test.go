package recommend

import (
	"context"
	"strings"
	"testing"

	"drink-recommender/internal/core/catalog"
	"drink-recommender/internal/core/pairing"
	"drink-recommender/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------- 測試替身 ----------------

type fakeAnalyzer struct {
	analysis *pairing.FoodAnalysis
	err      error
	calls    int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, imageRef string) (*pairing.FoodAnalysis, error) {
	f.calls++
	return f.analysis, f.err
}

type fakeGenerator struct {
	result *GenerationResult
	err    error
	calls  int
}

func (f *fakeGenerator) Recommend(ctx context.Context, analysis *pairing.FoodAnalysis, occasion string, tastes []string) (*GenerationResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeCache struct {
	entries map[string]*CacheEntry
	puts    int
	touches int
	putErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*CacheEntry)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	if e, ok := f.entries[key]; ok {
		return e, nil
	}
	return nil, ErrCacheMiss
}

func (f *fakeCache) Put(ctx context.Context, entry *CacheEntry) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.entries[entry.Key] = entry
	return nil
}

func (f *fakeCache) Touch(ctx context.Context, key string) error {
	f.touches++
	return nil
}

type fakeHistory struct {
	records map[string]*Recommendation
	creates int
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{records: make(map[string]*Recommendation)}
}

func (f *fakeHistory) Create(ctx context.Context, rec *Recommendation) error {
	f.creates++
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeHistory) ListByUser(ctx context.Context, userID string, limit, offset int) (*HistoryPage, error) {
	var items []Recommendation
	for _, r := range f.records {
		if r.UserID == userID {
			items = append(items, *r)
		}
	}
	return &HistoryPage{Items: items, Total: int64(len(items))}, nil
}

func (f *fakeHistory) GetByID(ctx context.Context, id string) (*Recommendation, error) {
	return f.records[id], nil
}

type fakeGate struct {
	err error
}

func (f *fakeGate) Authorize(ctx context.Context, userID string) error {
	return f.err
}

// fixedRand 固定亂數，讓模板選擇可預測
type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int { return r.v % n }

// ---------------- 測試夾具 ----------------

func testCatalog() catalog.Provider {
	return catalog.NewStaticProviderWith([]catalog.Drink{
		{ID: "soju-a", Name: "Soju A", Type: "soju", Occasions: []string{"gathering"}, Tastes: []string{"dry"}},
		{ID: "beer-a", Name: "Beer A", Type: "beer", Occasions: []string{"all"}, Tastes: []string{"refreshing"}},
		{ID: "beer-b", Name: "Beer B", Type: "beer", Occasions: []string{"party"}, Tastes: []string{"light"}},
		{ID: "wine-a", Name: "Wine A", Type: "wine", Occasions: []string{"date"}, Tastes: []string{"dry"}},
		{ID: "highball-a", Name: "Highball A", Type: "highball", Occasions: []string{"all"}, Tastes: []string{"refreshing"}},
		{ID: "sake-a", Name: "Sake A", Type: "sake", Occasions: []string{"date"}, Tastes: []string{"smooth"}},
	})
}

func testKey(keywords []string, category, occasion string, tastes []string) string {
	return strings.Join(keywords, ",") + "|" + category + "|" + occasion + "|" + strings.Join(tastes, ",")
}

type serviceFixture struct {
	svc       *Service
	analyzer  *fakeAnalyzer
	generator *fakeGenerator
	cache     *fakeCache
	history   *fakeHistory
	gate      *fakeGate
}

func newFixture() *serviceFixture {
	f := &serviceFixture{
		analyzer: &fakeAnalyzer{
			analysis: &pairing.FoodAnalysis{Keywords: []string{"fried chicken"}, Category: "fried"},
		},
		generator: &fakeGenerator{
			result: &GenerationResult{
				Drinks: []RecommendedDrink{
					{Drink: catalog.Drink{ID: "beer-a"}, Score: 95, Reason: "生成理由"},
				},
				Message: "生成訊息",
			},
		},
		cache:   newFakeCache(),
		history: newFakeHistory(),
		gate:    &fakeGate{},
	}
	f.svc = NewService(Options{
		Catalog:   testCatalog(),
		Analyzer:  f.analyzer,
		Generator: f.generator,
		Cache:     f.cache,
		History:   f.history,
		Gate:      f.gate,
		Rand:      fixedRand{0},
		CacheKey:  testKey,
	})
	return f
}

// ---------------- 測試 ----------------

func TestCreateRecommendationGateRejects(t *testing.T) {
	f := newFixture()
	f.gate.err = common.ErrQuotaExceeded

	_, err := f.svc.CreateRecommendation(context.Background(), &Request{UserID: "u1", ImageRef: "img"})
	require.Error(t, err)
	assert.Equal(t, common.ErrQuotaExceeded, err)
	assert.Zero(t, f.analyzer.calls, "閘門拒絕後不該做任何推薦工作")
	assert.Zero(t, f.generator.calls)
}

func TestCreateRecommendationGenerativePath(t *testing.T) {
	f := newFixture()

	result, err := f.svc.CreateRecommendation(context.Background(), &Request{
		UserID: "u1", ImageRef: "img", Occasion: "party",
	})
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, "生成訊息", result.Message)
	assert.Equal(t, []string{"fried chicken"}, result.DetectedFoods)
	assert.Equal(t, 1, f.cache.puts, "生成成功應寫入快取")
	assert.Equal(t, 1, f.history.creates, "已登入用戶應留下歷史")
	assert.NotEmpty(t, result.ID)
}

func TestCreateRecommendationCacheHitSkipsGenerator(t *testing.T) {
	f := newFixture()

	first, err := f.svc.CreateRecommendation(context.Background(), &Request{UserID: "u1", ImageRef: "img"})
	require.NoError(t, err)
	require.False(t, first.FromCache)

	second, err := f.svc.CreateRecommendation(context.Background(), &Request{UserID: "u1", ImageRef: "img"})
	require.NoError(t, err)

	assert.True(t, second.FromCache)
	assert.Equal(t, 1, f.generator.calls, "快取命中不該再呼叫生成器")
	assert.Equal(t, 1, f.cache.touches, "命中應更新使用統計")
	assert.Equal(t, first.Message, second.Message)
}

func TestCreateRecommendationFallbackOnGenerationFailure(t *testing.T) {
	f := newFixture()
	f.generator.err = ErrGenerationFailed

	result, err := f.svc.CreateRecommendation(context.Background(), &Request{
		UserID: "u1", ImageRef: "img", Occasion: "party",
	})
	require.NoError(t, err, "生成失敗時備援必須接手，不能對外報錯")

	assert.False(t, result.FromCache)
	assert.Len(t, result.Drinks, 3, "備援應產出前三名")
	assert.NotEmpty(t, result.Message)
	assert.Zero(t, f.cache.puts, "備援結果不該寫入快取")
}

func TestCreateRecommendationAnalyzerFailureDegrades(t *testing.T) {
	f := newFixture()
	f.analyzer.err = context.DeadlineExceeded
	f.analyzer.analysis = nil

	result, err := f.svc.CreateRecommendation(context.Background(), &Request{UserID: "u1", ImageRef: "img"})
	require.NoError(t, err, "分析失敗應降級為通用分析而非中斷")
	assert.Equal(t, 1, f.generator.calls)
	assert.NotEmpty(t, result.DetectedFoods)
}

func TestCreateRecommendationExplicitKeywordsSkipAnalyzer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateRecommendation(context.Background(), &Request{
		UserID: "u1", Keywords: []string{"sushi"},
	})
	require.NoError(t, err)
	assert.Zero(t, f.analyzer.calls, "明確給了關鍵字就不需要影像分析")
}

func TestCreateRecommendationAnonymousNoHistory(t *testing.T) {
	f := newFixture()

	result, err := f.svc.CreateRecommendation(context.Background(), &Request{ImageRef: "img"})
	require.NoError(t, err)

	assert.Zero(t, f.history.creates, "匿名請求不留歷史")
	assert.Empty(t, result.ID)
}

func TestCreateRecommendationCacheWriteFailureSwallowed(t *testing.T) {
	f := newFixture()
	f.cache.putErr = context.DeadlineExceeded

	result, err := f.svc.CreateRecommendation(context.Background(), &Request{UserID: "u1", ImageRef: "img"})
	require.NoError(t, err, "快取寫入失敗不得影響回應")
	assert.NotEmpty(t, result.Drinks)
}

func TestGetDetailOwnership(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateRecommendation(context.Background(), &Request{UserID: "owner", ImageRef: "img"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	rec, err := f.svc.GetDetail(context.Background(), "owner", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", rec.UserID)

	_, err = f.svc.GetDetail(context.Background(), "intruder", created.ID)
	assert.Equal(t, common.ErrForbidden, err, "別人的紀錄應回 403")

	_, err = f.svc.GetDetail(context.Background(), "owner", "missing-id")
	assert.Equal(t, common.ErrNotFound, err, "不存在的紀錄應回 404")
}

func TestGetDetailAnonymousAllowed(t *testing.T) {
	f := newFixture()

	created, err := f.svc.CreateRecommendation(context.Background(), &Request{UserID: "owner", ImageRef: "img"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// 匿名查詢不做擁有權檢查
	rec, err := f.svc.GetDetail(context.Background(), "", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, rec.ID)
}

func TestGetHistoryRequiresUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetHistory(context.Background(), "", 10, 0)
	assert.Equal(t, common.ErrUnauthorized, err)
}

func TestPickMessageDeterministicWithSeed(t *testing.T) {
	a := pickMessage(fixedRand{0}, "date")
	b := pickMessage(fixedRand{0}, "date")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, pickMessage(fixedRand{1}, "unknown-occasion"))
}
