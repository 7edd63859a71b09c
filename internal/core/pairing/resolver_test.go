package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactBeforeGeneric(t *testing.T) {
	r := NewResolverWith([]Rule{
		{FoodCategory: "korean", Reason: "generic"},
		{FoodCategory: "korean", FoodSubcategory: "bbq", Reason: "exact"},
	})

	rules := r.Resolve([]MenuCategory{{Category: "korean", Subcategory: "bbq"}})
	require.Len(t, rules, 1)
	assert.Equal(t, "exact", rules[0].Reason)
}

func TestResolveFallsBackToGeneric(t *testing.T) {
	r := NewResolverWith([]Rule{
		{FoodCategory: "korean", Reason: "generic"},
	})

	rules := r.Resolve([]MenuCategory{{Category: "korean", Subcategory: "pancake"}})
	require.Len(t, rules, 1)
	assert.Equal(t, "generic", rules[0].Reason)
}

func TestResolveKeepsDuplicates(t *testing.T) {
	r := NewResolverWith([]Rule{
		{FoodCategory: "spicy", Reason: "spicy"},
	})

	rules := r.Resolve([]MenuCategory{
		{Category: "spicy"},
		{Category: "spicy"},
	})
	assert.Len(t, rules, 2, "重複規則保留，下游評分權重隨之增加")
}

func TestResolveUnknownCategoryYieldsNothing(t *testing.T) {
	r := NewResolver()

	assert.Empty(t, r.Resolve([]MenuCategory{{Category: "unknown"}}))
	assert.Empty(t, r.Resolve(nil))
}

func TestResolveDefaultTableCoversKnownPairings(t *testing.T) {
	r := NewResolver()

	rules := r.Resolve([]MenuCategory{
		{Category: "fried", Subcategory: "chicken"},
		{Category: "japanese", Subcategory: "sushi"},
	})
	require.Len(t, rules, 2)
	assert.True(t, rules[0].HasDrinkType("beer"))
	assert.True(t, rules[1].HasDrinkType("sake"))
}
