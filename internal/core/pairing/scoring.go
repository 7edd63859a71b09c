package pairing

import (
	"fmt"
	"sort"

	"drink-recommender/internal/core/catalog"
)

const (
	// 菜單配對子分數
	menuTypeMatchScore  = 40.0 // 規則酒類命中
	menuTasteMatchScore = 20.0 // 規則口味每命中一個
	menuWildcardScore   = 10.0 // 食物搭配含萬用標籤

	// 場合配對子分數
	situationExactScore    = 100.0
	situationWildcardScore = 50.0

	// 評分數量上限
	topN = 3
)

// Weights 四個維度的加權，總和必須為 1.0（於設定層驗證）
type Weights struct {
	Menu       float64
	Situation  float64
	Taste      float64
	Popularity float64
}

// DefaultWeights 預設權重
func DefaultWeights() Weights {
	return Weights{Menu: 0.5, Situation: 0.2, Taste: 0.2, Popularity: 0.1}
}

// PopularityFunc 人氣分數來源。目前是固定值佔位，保留為可插拔函式，
// 之後接上實際使用統計時不必動評分邏輯。
type PopularityFunc func(d catalog.Drink) float64

// ConstantPopularity 固定人氣分數
func ConstantPopularity(score float64) PopularityFunc {
	return func(catalog.Drink) float64 { return score }
}

// Engine 評分引擎
type Engine struct {
	weights    Weights
	popularity PopularityFunc
}

// NewEngine 建立評分引擎，popularity 為 nil 時使用固定 50 分
func NewEngine(weights Weights, popularity PopularityFunc) *Engine {
	if popularity == nil {
		popularity = ConstantPopularity(50)
	}
	return &Engine{weights: weights, popularity: popularity}
}

// ScoreDrink 對單一候選酒款計算四個子分數與加權總分。
// 分數只用於比較排序，不做 100 分正規化，菜單分數沒有上限。
func (e *Engine) ScoreDrink(d catalog.Drink, rules []Rule, occasion string, tastes []string) Score {
	breakdown := Breakdown{
		MenuMatch:      menuMatch(d, rules),
		SituationMatch: situationMatch(d, occasion),
		TasteMatch:     tasteMatch(d, tastes),
		Popularity:     e.popularity(d),
	}

	total := breakdown.MenuMatch*e.weights.Menu +
		breakdown.SituationMatch*e.weights.Situation +
		breakdown.TasteMatch*e.weights.Taste +
		breakdown.Popularity*e.weights.Popularity

	return Score{
		DrinkID:   d.ID,
		Total:     total,
		Breakdown: breakdown,
		Reason:    scoreReason(d, rules),
	}
}

// Rank 對候選池評分並取總分前三名。使用穩定排序，同分保持原本
// 候選順序，讓相同輸入永遠產出相同結果。
func (e *Engine) Rank(candidates []catalog.Drink, rules []Rule, occasion string, tastes []string) []Score {
	scores := make([]Score, len(candidates))
	for i, d := range candidates {
		scores[i] = e.ScoreDrink(d, rules, occasion, tastes)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})

	if len(scores) > topN {
		scores = scores[:topN]
	}
	return scores
}

// menuMatch 菜單配對分數：規則為空時只剩萬用搭配加分，
// 呼叫端視為「沒有菜單訊號，退回通用標籤比對」。
func menuMatch(d catalog.Drink, rules []Rule) float64 {
	score := 0.0
	for _, rule := range rules {
		if rule.HasDrinkType(d.Type) {
			score += menuTypeMatchScore
		}
		for _, t := range d.Tastes {
			for _, rt := range rule.DrinkTastes {
				if t == rt {
					score += menuTasteMatchScore
					break
				}
			}
		}
	}
	if d.PairsWithAll() {
		score += menuWildcardScore
	}
	return score
}

// situationMatch 場合配對分數
func situationMatch(d catalog.Drink, occasion string) float64 {
	if occasion == "" || occasion == catalog.OccasionAll {
		return situationWildcardScore
	}
	for _, o := range d.Occasions {
		if o == occasion {
			return situationExactScore
		}
	}
	if d.HasWildcardOccasion() {
		return situationWildcardScore
	}
	return 0
}

// tasteMatch 口味配對分數：未指定口味時給中性 50 分
func tasteMatch(d catalog.Drink, tastes []string) float64 {
	if len(tastes) == 0 {
		return 50
	}
	matched := 0
	for _, t := range tastes {
		if d.HasTaste(t) {
			matched++
		}
	}
	return 100 * float64(matched) / float64(len(tastes))
}

// scoreReason 取第一條命中酒類的規則說明，沒有就給通用說明
func scoreReason(d catalog.Drink, rules []Rule) string {
	for _, rule := range rules {
		if rule.HasDrinkType(d.Type) {
			return rule.Reason
		}
	}
	return fmt.Sprintf("%s 的風味和這餐的整體方向很合拍", d.Name)
}
