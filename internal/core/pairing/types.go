package pairing

// FoodAnalysis 食物分析結果，由外部協作者（影像辨識）產生，一個請求一份
type FoodAnalysis struct {
	Keywords        []string `json:"keywords"`
	Category        string   `json:"category"`
	Cuisine         string   `json:"cuisine,omitempty"`
	Characteristics []string `json:"characteristics"`
}

// GenericAnalysis 影像辨識失敗時使用的通用佔位分析
func GenericAnalysis() *FoodAnalysis {
	return &FoodAnalysis{
		Keywords:        []string{"food"},
		Category:        "general",
		Characteristics: []string{"balanced"},
	}
}

// MenuCategory 菜單分類，靜態設定資料
type MenuCategory struct {
	Category    string
	Subcategory string
	Keywords    []string // 僅用於關鍵字查表
}

// Rule 配對規則：食物分類對應偏好的酒類與口味，靜態設定資料。
// 有子分類的規則優先於只有分類的通用規則。
type Rule struct {
	FoodCategory    string
	FoodSubcategory string
	DrinkTypes      []string
	DrinkTastes     []string
	Reason          string
}

// HasDrinkType 檢查規則是否偏好指定酒類
func (r Rule) HasDrinkType(drinkType string) bool {
	for _, t := range r.DrinkTypes {
		if t == drinkType {
			return true
		}
	}
	return false
}

// Breakdown 各維度子分數
type Breakdown struct {
	MenuMatch      float64 `json:"menu_match"`
	SituationMatch float64 `json:"situation_match"`
	TasteMatch     float64 `json:"taste_match"`
	Popularity     float64 `json:"popularity"`
}

// Score 單一酒款的加權評分結果
type Score struct {
	DrinkID   string    `json:"drink_id"`
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
	Reason    string    `json:"reason"`
}
