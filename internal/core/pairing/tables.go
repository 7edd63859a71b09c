package pairing

// menuCategories 菜單分類靜態表
var menuCategories = []MenuCategory{
	{Category: "korean", Subcategory: "bbq", Keywords: []string{"samgyeopsal", "bbq", "galbi", "bulgogi", "pork belly", "烤肉", "五花肉"}},
	{Category: "korean", Subcategory: "stew", Keywords: []string{"kimchi jjigae", "stew", "jjigae", "soup", "湯", "鍋"}},
	{Category: "korean", Subcategory: "pancake", Keywords: []string{"pajeon", "pancake", "jeon", "煎餅"}},
	{Category: "korean", Subcategory: "spicy", Keywords: []string{"tteokbokki", "buldak", "spicy chicken", "辣炒年糕"}},
	{Category: "korean", Keywords: []string{"kimchi", "bibimbap", "korean", "韓式"}},
	{Category: "fried", Subcategory: "chicken", Keywords: []string{"fried chicken", "chicken", "karaage", "炸雞"}},
	{Category: "fried", Keywords: []string{"fried", "tempura", "tonkatsu", "croquette", "炸"}},
	{Category: "japanese", Subcategory: "sushi", Keywords: []string{"sushi", "sashimi", "壽司", "刺身"}},
	{Category: "japanese", Subcategory: "ramen", Keywords: []string{"ramen", "udon", "拉麵"}},
	{Category: "japanese", Keywords: []string{"japanese", "izakaya", "yakitori", "日式"}},
	{Category: "western", Subcategory: "steak", Keywords: []string{"steak", "beef", "lamb", "牛排"}},
	{Category: "western", Subcategory: "pizza", Keywords: []string{"pizza", "披薩"}},
	{Category: "western", Subcategory: "pasta", Keywords: []string{"pasta", "spaghetti", "risotto", "義大利麵"}},
	{Category: "western", Keywords: []string{"burger", "sandwich", "western"}},
	{Category: "seafood", Keywords: []string{"seafood", "fish", "oyster", "shrimp", "crab", "squid", "海鮮", "生蠔"}},
	{Category: "spicy", Keywords: []string{"spicy", "mala", "chili", "hot pot", "麻辣", "辣"}},
	{Category: "dessert", Keywords: []string{"dessert", "cake", "chocolate", "ice cream", "tart", "甜點", "蛋糕"}},
	{Category: "cheese", Keywords: []string{"cheese", "fondue", "起司"}},
	{Category: "salad", Keywords: []string{"salad", "vegetable", "沙拉"}},
	{Category: "snack", Keywords: []string{"snack", "chips", "nuts", "dried", "下酒菜"}},
}

// pairingRules 配對規則靜態表，子分類規則優先
var pairingRules = []Rule{
	{FoodCategory: "korean", FoodSubcategory: "bbq", DrinkTypes: []string{"soju", "beer"}, DrinkTastes: []string{"dry", "refreshing", "clean"}, Reason: "烤肉油脂豐厚，清爽的燒酒或啤酒最能解膩"},
	{FoodCategory: "korean", FoodSubcategory: "stew", DrinkTypes: []string{"soju", "makgeolli"}, DrinkTastes: []string{"dry", "smooth"}, Reason: "熱湯鍋物配上順口的燒酒，暖意加倍"},
	{FoodCategory: "korean", FoodSubcategory: "pancake", DrinkTypes: []string{"makgeolli"}, DrinkTastes: []string{"sweet", "sour"}, Reason: "煎餅配濁米酒是雨天的傳統組合"},
	{FoodCategory: "korean", FoodSubcategory: "spicy", DrinkTypes: []string{"beer", "highball", "makgeolli"}, DrinkTastes: []string{"refreshing", "sweet", "light"}, Reason: "辣味料理需要氣泡或微甜來降溫"},
	{FoodCategory: "korean", DrinkTypes: []string{"soju", "beer", "makgeolli"}, DrinkTastes: []string{"refreshing", "dry"}, Reason: "韓式料理和國民酒款天生一對"},
	{FoodCategory: "fried", FoodSubcategory: "chicken", DrinkTypes: []string{"beer", "highball"}, DrinkTastes: []string{"refreshing", "light"}, Reason: "炸雞配啤酒，不需要理由"},
	{FoodCategory: "fried", DrinkTypes: []string{"beer", "highball", "wine"}, DrinkTastes: []string{"refreshing", "dry"}, Reason: "氣泡感能帶走炸物的油膩"},
	{FoodCategory: "japanese", FoodSubcategory: "sushi", DrinkTypes: []string{"sake", "wine"}, DrinkTastes: []string{"dry", "smooth", "light"}, Reason: "清酒的米香不會壓過生魚的細緻"},
	{FoodCategory: "japanese", FoodSubcategory: "ramen", DrinkTypes: []string{"beer", "highball"}, DrinkTastes: []string{"refreshing"}, Reason: "濃厚湯頭配清爽氣泡剛剛好"},
	{FoodCategory: "japanese", DrinkTypes: []string{"sake", "highball", "umeshu"}, DrinkTastes: []string{"smooth", "refreshing"}, Reason: "居酒屋風味的經典餐搭"},
	{FoodCategory: "western", FoodSubcategory: "steak", DrinkTypes: []string{"wine", "whisky"}, DrinkTastes: []string{"rich", "dry"}, Reason: "紅肉的油脂需要單寧或酒體來平衡"},
	{FoodCategory: "western", FoodSubcategory: "pizza", DrinkTypes: []string{"beer", "wine"}, DrinkTastes: []string{"refreshing", "light"}, Reason: "披薩配啤酒或輕酒體紅酒都不出錯"},
	{FoodCategory: "western", FoodSubcategory: "pasta", DrinkTypes: []string{"wine"}, DrinkTastes: []string{"dry", "light", "sour"}, Reason: "義式料理交給葡萄酒就對了"},
	{FoodCategory: "western", DrinkTypes: []string{"beer", "wine", "cocktail"}, DrinkTastes: []string{"refreshing", "dry"}, Reason: "西式餐點的安全牌餐搭"},
	{FoodCategory: "seafood", DrinkTypes: []string{"wine", "sake", "cocktail", "non-alcoholic"}, DrinkTastes: []string{"light", "refreshing", "dry"}, Reason: "海鮮要配酸度明亮、酒體輕盈的選擇"},
	{FoodCategory: "spicy", DrinkTypes: []string{"beer", "wine", "makgeolli", "highball"}, DrinkTastes: []string{"sweet", "refreshing", "light"}, Reason: "微甜與氣泡是辣度的滅火器"},
	{FoodCategory: "dessert", DrinkTypes: []string{"cocktail", "wine", "umeshu", "makgeolli"}, DrinkTastes: []string{"sweet", "rich"}, Reason: "甜點配甜酒，甜上加甜才是正解"},
	{FoodCategory: "cheese", DrinkTypes: []string{"wine", "whisky", "cocktail"}, DrinkTastes: []string{"rich", "dry"}, Reason: "起司的濃郁和酒體厚度相得益彰"},
	{FoodCategory: "salad", DrinkTypes: []string{"wine", "non-alcoholic", "highball"}, DrinkTastes: []string{"light", "refreshing"}, Reason: "清爽蔬食配輕盈酒款不搶味"},
	{FoodCategory: "snack", DrinkTypes: []string{"beer", "highball", "whisky"}, DrinkTastes: []string{"refreshing", "rich"}, Reason: "下酒菜本來就是為了配酒存在"},
}
