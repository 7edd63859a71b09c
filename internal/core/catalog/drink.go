package catalog

import "context"

// Drink 酒款資料，每個目錄快照內不可變
type Drink struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`        // beer, wine, soju, sake, whisky, highball, cocktail, makgeolli
	Description  string   `json:"description"`
	TastingNotes []string `json:"tasting_notes"` // 有序標籤
	FoodPairings []string `json:"food_pairings"` // 可包含萬用標籤 "all"
	Occasions    []string `json:"occasions"`     // 可包含萬用標籤 "all"
	Tastes       []string `json:"tastes"`
	Price        int      `json:"price"`
}

// OccasionAll 場合萬用標籤
const OccasionAll = "all"

// HasOccasion 檢查酒款是否適合指定場合（含萬用標籤）
func (d Drink) HasOccasion(occasion string) bool {
	for _, o := range d.Occasions {
		if o == occasion || o == OccasionAll {
			return true
		}
	}
	return false
}

// HasWildcardOccasion 檢查酒款場合是否包含萬用標籤
func (d Drink) HasWildcardOccasion() bool {
	for _, o := range d.Occasions {
		if o == OccasionAll {
			return true
		}
	}
	return false
}

// HasTaste 檢查酒款是否帶有指定口味標籤
func (d Drink) HasTaste(taste string) bool {
	for _, t := range d.Tastes {
		if t == taste {
			return true
		}
	}
	return false
}

// PairsWithAll 檢查酒款食物搭配是否包含萬用標籤
func (d Drink) PairsWithAll() bool {
	for _, p := range d.FoodPairings {
		if p == OccasionAll {
			return true
		}
	}
	return false
}

// Provider 酒款目錄的唯讀介面
type Provider interface {
	// ListDrinks 回傳目前快照內的全部酒款
	ListDrinks(ctx context.Context) ([]Drink, error)

	// GetDrinksByIDs 依 ID 查詢酒款，未知 ID 會被跳過
	GetDrinksByIDs(ctx context.Context, ids []string) ([]Drink, error)
}
