package ai

import (
	"context"
	"errors"
	"testing"

	"drink-recommender/internal/core/catalog"
	"drink-recommender/internal/core/pairing"
	"drink-recommender/internal/core/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTextGenerator 固定回覆的文字生成器
type fakeTextGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeTextGenerator) Generate(ctx context.Context, prompt string, imageRef string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func recommenderCatalog() catalog.Provider {
	return catalog.NewStaticProviderWith([]catalog.Drink{
		{ID: "beer-a", Name: "Beer A", Type: "beer", Tastes: []string{"refreshing"}},
		{ID: "soju-a", Name: "Soju A", Type: "soju", Tastes: []string{"dry"}},
	})
}

func testAnalysis() *pairing.FoodAnalysis {
	return &pairing.FoodAnalysis{Keywords: []string{"fried chicken"}, Category: "fried"}
}

func TestRecommendParsesFencedResponse(t *testing.T) {
	gen := &fakeTextGenerator{
		response: "```json\n{\"recommendations\":[{\"drink_id\":\"beer-a\",\"reason\":\"解膩\",\"score\":95,\"pairing_notes\":\"大口喝\"}],\"message\":\"乾杯\"}\n```",
	}
	r := NewGenerativeRecommender(gen, recommenderCatalog())

	result, err := r.Recommend(context.Background(), testAnalysis(), "party", []string{"refreshing"})
	require.NoError(t, err)
	require.Len(t, result.Drinks, 1)

	assert.Equal(t, "beer-a", result.Drinks[0].Drink.ID)
	assert.Equal(t, "Beer A", result.Drinks[0].Drink.Name, "酒款屬性應從目錄補齊")
	assert.Equal(t, 95.0, result.Drinks[0].Score)
	assert.Equal(t, "乾杯", result.Message)
}

func TestRecommendPromptContainsCatalog(t *testing.T) {
	gen := &fakeTextGenerator{
		response: `{"recommendations":[{"drink_id":"soju-a","reason":"r","score":80,"pairing_notes":""}],"message":"m"}`,
	}
	r := NewGenerativeRecommender(gen, recommenderCatalog())

	_, err := r.Recommend(context.Background(), testAnalysis(), "", nil)
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)

	// 完整目錄要進 prompt，模型只能從中挑選
	assert.Contains(t, gen.prompts[0], "beer-a")
	assert.Contains(t, gen.prompts[0], "soju-a")
	assert.Contains(t, gen.prompts[0], "fried chicken")
}

func TestRecommendGeneratorErrorWrapped(t *testing.T) {
	gen := &fakeTextGenerator{err: errors.New("connection refused")}
	r := NewGenerativeRecommender(gen, recommenderCatalog())

	_, err := r.Recommend(context.Background(), testAnalysis(), "", nil)
	assert.ErrorIs(t, err, recommend.ErrGenerationFailed)
}

func TestRecommendMalformedJSON(t *testing.T) {
	gen := &fakeTextGenerator{response: "很抱歉，我無法判斷這張圖片"}
	r := NewGenerativeRecommender(gen, recommenderCatalog())

	_, err := r.Recommend(context.Background(), testAnalysis(), "", nil)
	assert.ErrorIs(t, err, recommend.ErrGenerationFailed)
}

func TestRecommendEmptyRecommendations(t *testing.T) {
	gen := &fakeTextGenerator{response: `{"recommendations":[],"message":"m"}`}
	r := NewGenerativeRecommender(gen, recommenderCatalog())

	_, err := r.Recommend(context.Background(), testAnalysis(), "", nil)
	assert.ErrorIs(t, err, recommend.ErrGenerationFailed,
		"零筆推薦和失敗一樣要觸發備援")
}

func TestRecommendUnknownDrinkIDsSkipped(t *testing.T) {
	gen := &fakeTextGenerator{
		response: `{"recommendations":[{"drink_id":"ghost","reason":"r","score":90,"pairing_notes":""},{"drink_id":"beer-a","reason":"r","score":80,"pairing_notes":""}],"message":"m"}`,
	}
	r := NewGenerativeRecommender(gen, recommenderCatalog())

	result, err := r.Recommend(context.Background(), testAnalysis(), "", nil)
	require.NoError(t, err)
	require.Len(t, result.Drinks, 1)
	assert.Equal(t, "beer-a", result.Drinks[0].Drink.ID)
}

func TestRecommendAllUnknownIDsFails(t *testing.T) {
	gen := &fakeTextGenerator{
		response: `{"recommendations":[{"drink_id":"ghost","reason":"r","score":90,"pairing_notes":""}],"message":"m"}`,
	}
	r := NewGenerativeRecommender(gen, recommenderCatalog())

	_, err := r.Recommend(context.Background(), testAnalysis(), "", nil)
	assert.ErrorIs(t, err, recommend.ErrGenerationFailed)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounded by prose", "好的，結果如下：{\"a\":1} 希望有幫助", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.in))
		})
	}
}

func TestAnalyzeNormalizesKeywords(t *testing.T) {
	gen := &fakeTextGenerator{
		response: `{"keywords":[" Fried Chicken ","KIMCHI"],"category":"korean","cuisine":"korean","characteristics":["oily"]}`,
	}
	a := NewFoodAnalyzer(gen)

	analysis, err := a.Analyze(context.Background(), "img")
	require.NoError(t, err)
	assert.Equal(t, []string{"fried chicken", "kimchi"}, analysis.Keywords)
	assert.Equal(t, "korean", analysis.Category)
}

func TestAnalyzeNoKeywordsFails(t *testing.T) {
	gen := &fakeTextGenerator{response: `{"keywords":[],"category":""}`}
	a := NewFoodAnalyzer(gen)

	_, err := a.Analyze(context.Background(), "img")
	assert.Error(t, err)
}
