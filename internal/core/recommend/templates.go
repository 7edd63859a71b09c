package recommend

import "math/rand"

// Rand 注入的亂數來源，測試時可傳入固定種子的 rand.Rand
type Rand interface {
	Intn(n int) int
}

// defaultRand 包一層 math/rand 的頂層函式
type defaultRand struct{}

func (defaultRand) Intn(n int) int { return rand.Intn(n) }

// fallbackTemplates 規則式備援的推薦語模板，依場合挑選
var fallbackTemplates = map[string][]string{
	"date": {
		"約會就是要有儀式感，這幾支酒幫你加分！",
		"氣氛交給酒，心意交給你，祝約會順利！",
	},
	"party": {
		"聚會就是要熱鬧，這幾支酒最對味！",
		"人多就要喝得開心，乾杯！",
	},
	"gathering": {
		"三五好友小聚，配這幾支酒剛剛好！",
		"聊天配好酒，今晚慢慢喝！",
	},
	"solo": {
		"一個人的小酌時光，更要喝得講究！",
		"獨飲也可以很有品味，慢慢享受吧！",
	},
	"business": {
		"商務場合選酒要穩，這幾支不會出錯！",
		"談正事也要有好酒陪襯，祝順利成交！",
	},
}

// genericTemplates 場合沒對上時的通用推薦語
var genericTemplates = []string{
	"根據你的餐點，我們挑了這幾支最搭的酒款，乾杯！",
	"好菜配好酒，這幾支是我們的心頭好！",
	"這一餐配這幾支酒，保證不踩雷！",
}

// pickMessage 依場合從模板挑一句推薦語
func pickMessage(r Rand, occasion string) string {
	if templates, ok := fallbackTemplates[occasion]; ok && len(templates) > 0 {
		return templates[r.Intn(len(templates))]
	}
	return genericTemplates[r.Intn(len(genericTemplates))]
}
