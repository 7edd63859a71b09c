package pairing

// ruleKey 規則索引鍵
type ruleKey struct {
	category    string
	subcategory string
}

// Resolver 依標準化菜單分類查出配對規則
type Resolver struct {
	exact   map[ruleKey]Rule // (分類, 子分類) 精確規則
	generic map[string]Rule  // 只有分類的通用規則
}

// NewResolver 以預設規則表建立 Resolver
func NewResolver() *Resolver {
	return NewResolverWith(pairingRules)
}

// NewResolverWith 以指定規則表建立 Resolver（測試用）
func NewResolverWith(rules []Rule) *Resolver {
	exact := make(map[ruleKey]Rule)
	generic := make(map[string]Rule)
	for _, r := range rules {
		if r.FoodSubcategory != "" {
			exact[ruleKey{r.FoodCategory, r.FoodSubcategory}] = r
		} else {
			generic[r.FoodCategory] = r
		}
	}
	return &Resolver{exact: exact, generic: generic}
}

// Resolve 對每個菜單項目取至多一條規則：先找 (分類, 子分類) 精確規則，
// 沒有才退回只有分類的通用規則。結果保持輸入順序，允許重複——多個菜單
// 項目對應同一條規則時，該規則在下游評分的權重會隨之增加。
// 空輸入或全部無規則時回傳空列表，評分引擎視為「沒有菜單訊號」。
func (r *Resolver) Resolve(menus []MenuCategory) []Rule {
	var out []Rule
	for _, m := range menus {
		if m.Subcategory != "" {
			if rule, ok := r.exact[ruleKey{m.Category, m.Subcategory}]; ok {
				out = append(out, rule)
				continue
			}
		}
		if rule, ok := r.generic[m.Category]; ok {
			out = append(out, rule)
		}
	}
	return out
}
