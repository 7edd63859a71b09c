package pairing

import "strings"

// keywordEntry 攤平後的查表項，建構時一次性轉小寫
type keywordEntry struct {
	keyword     string
	category    string
	subcategory string
}

// Normalizer 將偵測到的食物關鍵字對應到標準菜單分類
type Normalizer struct {
	index []keywordEntry
}

// NewNormalizer 以預設分類表建立 Normalizer
func NewNormalizer() *Normalizer {
	return NewNormalizerWith(menuCategories)
}

// NewNormalizerWith 以指定分類表建立 Normalizer（測試用）
func NewNormalizerWith(categories []MenuCategory) *Normalizer {
	// 建表時攤平並轉小寫，之後每個關鍵字只需掃一次攤平索引
	var index []keywordEntry
	for _, mc := range categories {
		for _, kw := range mc.Keywords {
			index = append(index, keywordEntry{
				keyword:     strings.ToLower(kw),
				category:    mc.Category,
				subcategory: mc.Subcategory,
			})
		}
	}
	return &Normalizer{index: index}
}

// Normalize 將原始關鍵字列表轉成去重後的 (分類, 子分類) 列表，
// 依首次出現順序排列。完全沒有命中時回傳空列表，由呼叫端視為
// 「沒有菜單訊號」。
func (n *Normalizer) Normalize(keywords []string) []MenuCategory {
	var out []MenuCategory
	seen := make(map[string]struct{})

	for _, raw := range keywords {
		kw := strings.ToLower(strings.TrimSpace(raw))
		if kw == "" {
			continue
		}
		for _, entry := range n.index {
			// 子字串雙向比對：偵測文字包含表內關鍵字，或表內關鍵字包含偵測文字
			if !strings.Contains(kw, entry.keyword) && !strings.Contains(entry.keyword, kw) {
				continue
			}
			dedupKey := entry.category + "|" + entry.subcategory
			if _, ok := seen[dedupKey]; ok {
				continue
			}
			seen[dedupKey] = struct{}{}
			out = append(out, MenuCategory{
				Category:    entry.category,
				Subcategory: entry.subcategory,
			})
		}
	}

	return out
}
