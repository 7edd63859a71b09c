package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"drink-recommender/internal/core/catalog"
	"drink-recommender/internal/core/pairing"
	"drink-recommender/internal/core/recommend"
	"drink-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// GenerativeRecommender 生成式推薦配接器：把完整酒款目錄連同分析
// 摘要交給模型挑選，解析後再把酒款 ID 比對回目錄補齊完整屬性。
// 任何失敗（網路、格式錯誤、空結果）都以 recommend.ErrGenerationFailed
// 回報，作為規則式備援的觸發訊號，絕不回傳半信半疑的資料。
type GenerativeRecommender struct {
	generator TextGenerator
	catalog   catalog.Provider
}

// NewGenerativeRecommender 建立生成式推薦配接器
func NewGenerativeRecommender(generator TextGenerator, provider catalog.Provider) *GenerativeRecommender {
	return &GenerativeRecommender{
		generator: generator,
		catalog:   provider,
	}
}

// ---------------- 寬鬆版中繼結構：容忍分數型別雜訊 ----------------

type looseRecommendation struct {
	DrinkID      string      `json:"drink_id"`
	Reason       string      `json:"reason"`
	Score        json.Number `json:"score"`
	PairingNotes string      `json:"pairing_notes"`
}

type looseResponse struct {
	Recommendations []looseRecommendation `json:"recommendations"`
	Message         string                `json:"message"`
}

// ---------------------------------------------------------------

// Recommend 請模型從目錄中挑出 3 支搭配酒款
func (g *GenerativeRecommender) Recommend(ctx context.Context, analysis *pairing.FoodAnalysis, occasion string, tastes []string) (*recommend.GenerationResult, error) {
	drinks, err := g.catalog.ListDrinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list catalog: %v", recommend.ErrGenerationFailed, err)
	}
	if len(drinks) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", recommend.ErrGenerationFailed)
	}

	prompt := buildRecommendPrompt(drinks, analysis, occasion, tastes)
	common.LogDebug("生成式推薦組裝的 prompt", zap.Int("prompt_length", len(prompt)))

	content, err := g.generator.Generate(ctx, prompt, "")
	if err != nil {
		common.LogWarn("生成式推薦呼叫失敗，準備走規則式備援",
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", recommend.ErrGenerationFailed, err)
	}

	// 先用寬鬆版解析，容忍 markdown fence、未加引號的鍵與分數型別雜訊
	var lr looseResponse
	if err := common.ParseJSON(common.QuoteJSONKeys(extractJSON(content)), &lr); err != nil {
		common.LogError("生成式推薦回應解析失敗",
			zap.Error(err),
			zap.Int("response_length", len(content)),
		)
		return nil, fmt.Errorf("%w: parse response: %v", recommend.ErrGenerationFailed, err)
	}

	if len(lr.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: empty recommendations", recommend.ErrGenerationFailed)
	}

	// 把模型引用的酒款 ID 比對回目錄，補齊完整屬性；未知 ID 跳過
	ids := make([]string, 0, len(lr.Recommendations))
	for _, rec := range lr.Recommendations {
		ids = append(ids, strings.TrimSpace(rec.DrinkID))
	}
	matched, err := g.catalog.GetDrinksByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: rejoin catalog: %v", recommend.ErrGenerationFailed, err)
	}
	byID := make(map[string]catalog.Drink, len(matched))
	for _, d := range matched {
		byID[d.ID] = d
	}

	out := make([]recommend.RecommendedDrink, 0, len(lr.Recommendations))
	for _, rec := range lr.Recommendations {
		d, ok := byID[strings.TrimSpace(rec.DrinkID)]
		if !ok {
			common.LogWarn("模型引用了目錄外的酒款，跳過",
				zap.String("drink_id", rec.DrinkID),
			)
			continue
		}
		score, _ := rec.Score.Float64()
		reason := strings.TrimSpace(rec.Reason)
		if reason == "" {
			reason = "模型推薦的搭配"
		}
		out = append(out, recommend.RecommendedDrink{
			Drink:        d,
			Score:        score,
			Reason:       reason,
			PairingNotes: strings.TrimSpace(rec.PairingNotes),
		})
	}

	// 全部引用都無效，等同沒有結果
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no valid drink references", recommend.ErrGenerationFailed)
	}

	message := strings.TrimSpace(lr.Message)
	if message == "" {
		message = "為這一餐挑了幾支合拍的酒款，乾杯！"
	}

	common.LogInfo("生成式推薦成功",
		zap.Int("drinks_count", len(out)),
	)
	return &recommend.GenerationResult{
		Drinks:  out,
		Message: message,
	}, nil
}

// buildRecommendPrompt 組裝推薦提示詞：附上完整目錄（不預先過濾），
// 讓模型在全部酒款中挑選。
func buildRecommendPrompt(drinks []catalog.Drink, analysis *pairing.FoodAnalysis, occasion string, tastes []string) string {
	var sb strings.Builder
	for _, d := range drinks {
		sb.WriteString(fmt.Sprintf("- id=%s｜%s（%s）：%s｜口味：%s｜適合食物：%s｜價格：%d\n",
			d.ID, d.Name, d.Type, d.Description,
			strings.Join(d.Tastes, ","),
			strings.Join(d.FoodPairings, ","),
			d.Price,
		))
	}

	foodSummary := "未提供"
	if analysis != nil {
		foodSummary = fmt.Sprintf("關鍵字：%s；分類：%s；特徵：%s",
			common.StringSliceToString(analysis.Keywords),
			analysis.Category,
			common.StringSliceToString(analysis.Characteristics),
		)
		if analysis.Cuisine != "" {
			foodSummary += "；菜系：" + analysis.Cuisine
		}
	}

	tasteText := strings.Join(tastes, ",")
	if tasteText == "" {
		tasteText = "未指定"
	}
	if occasion == "" {
		occasion = "未指定"
	}

	return fmt.Sprintf(`你是餐酒搭配專家。請從下列酒款目錄中挑出最適合這一餐的 3 支酒（用繁體中文回答）。

這一餐：
%s

場合：%s
口味偏好：%s

酒款目錄：
%s

要求：
1. 只能推薦目錄中出現的酒款，drink_id 必須一字不差照抄目錄的 id
2. 每支酒都要附上推薦理由（reason）、0-100 的分數（score）與搭配筆記（pairing_notes）
3. message 填一段給用戶看的整體推薦語，輕鬆口語
4. 所有字段都必須使用雙引號
5. 不需要考慮可讀性，請省略所有空格和換行，返回最緊湊的 JSON 格式
6. 只回傳一個獨立的 json，不要回傳多個 json
7. 所有欄位都必須要有不能漏掉，如果不知道填什麼請留空 "" or null

請以以下 JSON 格式返回（僅作為範例，請勿直接複製內容）：
{"recommendations":[{"drink_id":"酒款id","reason":"理由","score":90,"pairing_notes":"搭配筆記"}],"message":"整體推薦語"}`,
		foodSummary, occasion, tasteText, sb.String())
}
