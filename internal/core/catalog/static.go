package catalog

import "context"

// StaticProvider 以內建快照提供酒款目錄
type StaticProvider struct {
	drinks []Drink
	byID   map[string]Drink
}

// NewStaticProvider 建立預設目錄的提供者
func NewStaticProvider() *StaticProvider {
	return NewStaticProviderWith(defaultDrinks)
}

// NewStaticProviderWith 以指定快照建立提供者（測試用）
func NewStaticProviderWith(drinks []Drink) *StaticProvider {
	byID := make(map[string]Drink, len(drinks))
	for _, d := range drinks {
		byID[d.ID] = d
	}
	return &StaticProvider{
		drinks: drinks,
		byID:   byID,
	}
}

// ListDrinks 回傳全部酒款
func (p *StaticProvider) ListDrinks(ctx context.Context) ([]Drink, error) {
	out := make([]Drink, len(p.drinks))
	copy(out, p.drinks)
	return out, nil
}

// GetDrinksByIDs 依 ID 查詢，保留輸入順序，未知 ID 跳過
func (p *StaticProvider) GetDrinksByIDs(ctx context.Context, ids []string) ([]Drink, error) {
	out := make([]Drink, 0, len(ids))
	for _, id := range ids {
		if d, ok := p.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// defaultDrinks 內建酒款快照
var defaultDrinks = []Drink{
	{
		ID: "soju-chamisul", Name: "Chamisul Fresh", Type: "soju",
		Description:  "口感乾淨俐落的經典燒酒，適合搭配重口味料理",
		TastingNotes: []string{"clean", "neutral", "crisp"},
		FoodPairings: []string{"korean", "grilled", "spicy", "stew"},
		Occasions:    []string{"gathering", "solo"},
		Tastes:       []string{"dry", "clean"},
		Price:        5000,
	},
	{
		ID: "soju-jinro", Name: "Jinro Is Back", Type: "soju",
		Description:  "微甜順口的低度燒酒，新手友善",
		TastingNotes: []string{"sweet", "smooth"},
		FoodPairings: []string{"korean", "fried", "spicy"},
		Occasions:    []string{"gathering", "party"},
		Tastes:       []string{"sweet", "smooth"},
		Price:        5000,
	},
	{
		ID: "beer-lager", Name: "Crisp Lager", Type: "beer",
		Description:  "清爽氣泡感拉格，炸物的萬年搭檔",
		TastingNotes: []string{"crisp", "malty", "bubbly"},
		FoodPairings: []string{"fried", "pizza", "snack", "all"},
		Occasions:    []string{"all"},
		Tastes:       []string{"refreshing", "light"},
		Price:        4500,
	},
	{
		ID: "beer-ipa", Name: "Hoppy IPA", Type: "beer",
		Description:  "苦韻明顯的 IPA，適合油脂豐富的料理",
		TastingNotes: []string{"hoppy", "bitter", "citrus"},
		FoodPairings: []string{"burger", "fried", "meat"},
		Occasions:    []string{"gathering", "solo"},
		Tastes:       []string{"bitter", "rich"},
		Price:        7000,
	},
	{
		ID: "beer-wheat", Name: "Cloudy Wheat Ale", Type: "beer",
		Description:  "小麥香氣柔和，帶果香的淡色艾爾",
		TastingNotes: []string{"banana", "soft", "hazy"},
		FoodPairings: []string{"salad", "seafood", "snack"},
		Occasions:    []string{"date", "gathering"},
		Tastes:       []string{"light", "sweet"},
		Price:        6500,
	},
	{
		ID: "wine-cab", Name: "Cabernet Sauvignon", Type: "wine",
		Description:  "單寧厚實的紅酒，紅肉料理首選",
		TastingNotes: []string{"blackcurrant", "oak", "tannin"},
		FoodPairings: []string{"steak", "meat", "cheese", "grilled"},
		Occasions:    []string{"date", "celebration"},
		Tastes:       []string{"dry", "rich"},
		Price:        32000,
	},
	{
		ID: "wine-pinot", Name: "Pinot Noir", Type: "wine",
		Description:  "酒體輕盈的紅酒，酸度明亮",
		TastingNotes: []string{"cherry", "earthy", "silky"},
		FoodPairings: []string{"meat", "mushroom", "cheese"},
		Occasions:    []string{"date", "gathering"},
		Tastes:       []string{"light", "sour"},
		Price:        38000,
	},
	{
		ID: "wine-riesling", Name: "Riesling", Type: "wine",
		Description:  "微甜白酒，辣味料理的好朋友",
		TastingNotes: []string{"peach", "honey", "mineral"},
		FoodPairings: []string{"spicy", "asian", "seafood"},
		Occasions:    []string{"date", "solo"},
		Tastes:       []string{"sweet", "light"},
		Price:        28000,
	},
	{
		ID: "wine-sparkling", Name: "Brut Sparkling", Type: "wine",
		Description:  "細緻氣泡的不甜氣泡酒，慶祝場合必備",
		TastingNotes: []string{"apple", "toast", "bubbly"},
		FoodPairings: []string{"fried", "seafood", "dessert", "all"},
		Occasions:    []string{"celebration", "party", "date"},
		Tastes:       []string{"dry", "refreshing"},
		Price:        35000,
	},
	{
		ID: "sake-junmai", Name: "Junmai Sake", Type: "sake",
		Description:  "米香飽滿的純米酒，溫潤不搶味",
		TastingNotes: []string{"rice", "umami", "round"},
		FoodPairings: []string{"sushi", "seafood", "japanese"},
		Occasions:    []string{"date", "solo"},
		Tastes:       []string{"smooth", "dry"},
		Price:        18000,
	},
	{
		ID: "sake-nigori", Name: "Nigori Sake", Type: "sake",
		Description:  "濁酒口感綿密微甜，甜點也能搭",
		TastingNotes: []string{"creamy", "sweet", "rice"},
		FoodPairings: []string{"spicy", "dessert"},
		Occasions:    []string{"date", "gathering"},
		Tastes:       []string{"sweet", "smooth"},
		Price:        16000,
	},
	{
		ID: "whisky-highland", Name: "Highland Single Malt", Type: "whisky",
		Description:  "蜂蜜與果乾氣息的單一麥芽，適合慢慢品飲",
		TastingNotes: []string{"honey", "dried-fruit", "vanilla"},
		FoodPairings: []string{"cheese", "chocolate", "smoked"},
		Occasions:    []string{"solo", "celebration"},
		Tastes:       []string{"rich", "smooth"},
		Price:        65000,
	},
	{
		ID: "whisky-peat", Name: "Islay Peated Malt", Type: "whisky",
		Description:  "泥煤煙燻風味強烈，老饕取向",
		TastingNotes: []string{"peat", "smoke", "iodine"},
		FoodPairings: []string{"smoked", "oyster", "meat"},
		Occasions:    []string{"solo"},
		Tastes:       []string{"rich", "bitter"},
		Price:        78000,
	},
	{
		ID: "highball-classic", Name: "Classic Highball", Type: "highball",
		Description:  "威士忌蘇打的清爽組合，百搭餐酒",
		TastingNotes: []string{"citrus", "bubbly", "light-oak"},
		FoodPairings: []string{"fried", "japanese", "snack", "all"},
		Occasions:    []string{"all"},
		Tastes:       []string{"refreshing", "dry"},
		Price:        8000,
	},
	{
		ID: "highball-yuzu", Name: "Yuzu Highball", Type: "highball",
		Description:  "柚子香氣明亮，微甜好入口",
		TastingNotes: []string{"yuzu", "citrus", "bubbly"},
		FoodPairings: []string{"fried", "seafood", "salad"},
		Occasions:    []string{"date", "party"},
		Tastes:       []string{"sweet", "refreshing"},
		Price:        9000,
	},
	{
		ID: "cocktail-mojito", Name: "Mojito", Type: "cocktail",
		Description:  "薄荷萊姆經典調酒，清涼解膩",
		TastingNotes: []string{"mint", "lime", "sugar"},
		FoodPairings: []string{"seafood", "salad", "mexican"},
		Occasions:    []string{"party", "date"},
		Tastes:       []string{"refreshing", "sweet", "sour"},
		Price:        12000,
	},
	{
		ID: "cocktail-negroni", Name: "Negroni", Type: "cocktail",
		Description:  "苦甜平衡的餐前經典，開胃首選",
		TastingNotes: []string{"bitter-orange", "herbal", "juniper"},
		FoodPairings: []string{"cheese", "cured-meat", "snack"},
		Occasions:    []string{"date", "solo"},
		Tastes:       []string{"bitter", "rich"},
		Price:        14000,
	},
	{
		ID: "cocktail-espresso", Name: "Espresso Martini", Type: "cocktail",
		Description:  "咖啡與伏特加的餐後調酒，甜點絕配",
		TastingNotes: []string{"coffee", "cocoa", "velvet"},
		FoodPairings: []string{"dessert", "chocolate"},
		Occasions:    []string{"date", "party"},
		Tastes:       []string{"sweet", "rich"},
		Price:        13000,
	},
	{
		ID: "makgeolli-classic", Name: "Handmade Makgeolli", Type: "makgeolli",
		Description:  "微酸微甜的濁米酒，煎餅的靈魂伴侶",
		TastingNotes: []string{"rice", "tangy", "milky"},
		FoodPairings: []string{"pancake", "korean", "spicy"},
		Occasions:    []string{"gathering", "solo"},
		Tastes:       []string{"sweet", "sour"},
		Price:        7000,
	},
	{
		ID: "makgeolli-peach", Name: "Peach Makgeolli", Type: "makgeolli",
		Description:  "蜜桃風味濁米酒，甜感明顯",
		TastingNotes: []string{"peach", "sweet", "milky"},
		FoodPairings: []string{"dessert", "pancake", "snack"},
		Occasions:    []string{"party", "date"},
		Tastes:       []string{"sweet", "light"},
		Price:        8000,
	},
	{
		ID: "wine-rose", Name: "Provence Rose", Type: "wine",
		Description:  "乾爽粉紅酒，前菜到主餐都好搭",
		TastingNotes: []string{"strawberry", "floral", "crisp"},
		FoodPairings: []string{"salad", "seafood", "cheese", "all"},
		Occasions:    []string{"date", "party", "gathering"},
		Tastes:       []string{"dry", "light", "refreshing"},
		Price:        26000,
	},
	{
		ID: "beer-stout", Name: "Nitro Stout", Type: "beer",
		Description:  "綿密黑啤，烘烤與巧克力風味",
		TastingNotes: []string{"roast", "chocolate", "creamy"},
		FoodPairings: []string{"stew", "dessert", "meat"},
		Occasions:    []string{"solo", "gathering"},
		Tastes:       []string{"rich", "bitter"},
		Price:        7500,
	},
	{
		ID: "nonalc-sparkling-tea", Name: "Sparkling Jasmine Tea", Type: "non-alcoholic",
		Description:  "茉莉氣泡茶，無酒精也講究餐搭",
		TastingNotes: []string{"jasmine", "bubbly", "green-tea"},
		FoodPairings: []string{"seafood", "salad", "asian", "all"},
		Occasions:    []string{"all"},
		Tastes:       []string{"light", "refreshing"},
		Price:        6000,
	},
	{
		ID: "umeshu-classic", Name: "Umeshu on the Rocks", Type: "umeshu",
		Description:  "酸甜梅酒，餐前餐後皆宜",
		TastingNotes: []string{"plum", "sweet", "almond"},
		FoodPairings: []string{"japanese", "dessert", "fried"},
		Occasions:    []string{"date", "solo"},
		Tastes:       []string{"sweet", "sour"},
		Price:        9000,
	},
}
