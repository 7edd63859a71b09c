package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMatchesKnownKeyword(t *testing.T) {
	n := NewNormalizer()

	out := n.Normalize([]string{"samgyeopsal"})
	require.NotEmpty(t, out)
	assert.Equal(t, "korean", out[0].Category)
	assert.Equal(t, "bbq", out[0].Subcategory)
}

func TestNormalizeSubstringBothDirections(t *testing.T) {
	n := NewNormalizer()

	// 偵測文字包含表內關鍵字
	out := n.Normalize([]string{"korean fried chicken with sauce"})
	require.NotEmpty(t, out)

	found := false
	for _, mc := range out {
		if mc.Category == "fried" && mc.Subcategory == "chicken" {
			found = true
		}
	}
	assert.True(t, found, "較長的偵測文字應命中 fried/chicken")
}

func TestNormalizeDedupKeepsFirstSeenOrder(t *testing.T) {
	n := NewNormalizer()

	out := n.Normalize([]string{"sushi", "sashimi", "ramen"})
	require.Len(t, out, 2, "sushi 與 sashimi 屬於同一分類，應去重")
	assert.Equal(t, "sushi", out[0].Subcategory)
	assert.Equal(t, "ramen", out[1].Subcategory)
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	n := NewNormalizer()

	lower := n.Normalize([]string{"pizza"})
	upper := n.Normalize([]string{"PIZZA"})
	assert.Equal(t, lower, upper)
}

func TestNormalizeUnknownKeywordsReturnEmpty(t *testing.T) {
	n := NewNormalizer()

	assert.Empty(t, n.Normalize([]string{"zzzz-nonexistent"}))
	assert.Empty(t, n.Normalize(nil))
	assert.Empty(t, n.Normalize([]string{"", "  "}))
}

func TestNormalizeCustomTable(t *testing.T) {
	n := NewNormalizerWith([]MenuCategory{
		{Category: "test", Subcategory: "a", Keywords: []string{"alpha"}},
		{Category: "test", Subcategory: "b", Keywords: []string{"beta"}},
	})

	out := n.Normalize([]string{"beta", "alpha"})
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].Subcategory)
	assert.Equal(t, "a", out[1].Subcategory)
}
