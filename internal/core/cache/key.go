package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// keyMaterial 參與雜湊的標準化輸入。欄位順序由 JSON 編碼固定，
// 兩個列表欄位在雜湊前必須排序，鍵值才與輸入順序無關。
type keyMaterial struct {
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
	Occasion string   `json:"occasion"`
	Tastes   []string `json:"tastes"`
}

// Key 由標準化輸入導出確定性快取鍵（SHA-256 十六進位）
func Key(keywords []string, category, occasion string, tastes []string) string {
	material := keyMaterial{
		Keywords: normalizeList(keywords),
		Category: strings.TrimSpace(strings.ToLower(category)),
		Occasion: strings.TrimSpace(strings.ToLower(occasion)),
		Tastes:   normalizeList(tastes),
	}

	// encoding/json 對 struct 欄位輸出順序固定，可作為標準形式
	data, err := json.Marshal(material)
	if err != nil {
		// keyMaterial 只含字串，Marshal 不會失敗
		return ""
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// normalizeList 去空白、轉小寫、排序，nil 視為空列表
func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(strings.ToLower(item))
		if item != "" {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}
