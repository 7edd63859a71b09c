package ai

import (
	"context"
	"fmt"
	"strings"

	"drink-recommender/internal/core/pairing"
	"drink-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// FoodAnalyzer 以視覺模型分析食物照片。失敗是軟性的：呼叫端
// 以通用佔位分析代替，不會讓請求失敗。
type FoodAnalyzer struct {
	generator TextGenerator
}

// NewFoodAnalyzer 建立食物分析服務
func NewFoodAnalyzer(generator TextGenerator) *FoodAnalyzer {
	return &FoodAnalyzer{generator: generator}
}

// analyzePrompt 食物分析提示詞
const analyzePrompt = `請分析圖片中的食物，並以最緊湊的 JSON 格式回答（不要換行、不要 markdown）。

要求：
1. keywords 填入食物的英文關鍵字（小寫），例如 "fried chicken"、"sushi"
2. category 填入大分類英文小寫，例如 korean、japanese、western、seafood、dessert
3. cuisine 可選，菜系名稱
4. characteristics 填入口感或風味特徵英文小寫，例如 spicy、oily、sweet
5. 所有字段都必須使用雙引號
6. 無法判斷的欄位請留空 "" 或 []

請以以下 JSON 格式返回：
{"keywords":["關鍵字"],"category":"分類","cuisine":"菜系","characteristics":["特徵"]}`

// Analyze 分析食物照片，回傳標準化的 FoodAnalysis
func (a *FoodAnalyzer) Analyze(ctx context.Context, imageRef string) (*pairing.FoodAnalysis, error) {
	content, err := a.generator.Generate(ctx, analyzePrompt, imageRef)
	if err != nil {
		return nil, fmt.Errorf("food analysis failed: %w", err)
	}

	var analysis pairing.FoodAnalysis
	if err := common.ParseJSON(common.QuoteJSONKeys(extractJSON(content)), &analysis); err != nil {
		common.LogError("食物分析回應解析失敗",
			zap.Error(err),
			zap.Int("response_length", len(content)),
		)
		return nil, fmt.Errorf("failed to parse food analysis: %w", err)
	}

	// 標準化：關鍵字轉小寫去空白
	keywords := make([]string, 0, len(analysis.Keywords))
	for _, kw := range analysis.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	analysis.Keywords = keywords
	analysis.Category = strings.ToLower(strings.TrimSpace(analysis.Category))

	if len(analysis.Keywords) == 0 {
		return nil, fmt.Errorf("food analysis produced no keywords")
	}

	common.LogInfo("食物分析完成",
		zap.Strings("keywords", analysis.Keywords),
		zap.String("category", analysis.Category),
	)
	return &analysis, nil
}
