package pairing

import (
	"testing"

	"drink-recommender/internal/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDrink(id, drinkType string, occasions, tastes []string) catalog.Drink {
	return catalog.Drink{
		ID:        id,
		Name:      id,
		Type:      drinkType,
		Occasions: occasions,
		Tastes:    tastes,
	}
}

func TestFilterByOccasion(t *testing.T) {
	drinks := []catalog.Drink{
		testDrink("a", "beer", []string{"party"}, []string{"refreshing"}),
		testDrink("b", "wine", []string{"date"}, []string{"dry"}),
		testDrink("c", "highball", []string{"all"}, []string{"refreshing"}),
		testDrink("d", "soju", []string{"party", "gathering"}, []string{"dry"}),
	}

	out := FilterCandidates(drinks, "party", nil)
	require.Len(t, out, 3)
	ids := []string{out[0].ID, out[1].ID, out[2].ID}
	assert.Equal(t, []string{"a", "c", "d"}, ids, "場合命中與萬用場合都該保留")
}

func TestFilterWildcardOccasionSkipsFiltering(t *testing.T) {
	drinks := []catalog.Drink{
		testDrink("a", "beer", []string{"party"}, nil),
		testDrink("b", "wine", []string{"date"}, nil),
	}

	assert.Len(t, FilterCandidates(drinks, "all", nil), 2)
	assert.Len(t, FilterCandidates(drinks, "", nil), 2)
}

func TestFilterTasteNarrowingNeedsEnoughSurvivors(t *testing.T) {
	// 6 支 all 場合酒款，其中 5 支 sweet：縮小後 >= 5，採用
	drinks := []catalog.Drink{
		testDrink("s1", "wine", []string{"all"}, []string{"sweet"}),
		testDrink("s2", "wine", []string{"all"}, []string{"sweet"}),
		testDrink("s3", "umeshu", []string{"all"}, []string{"sweet"}),
		testDrink("s4", "makgeolli", []string{"all"}, []string{"sweet"}),
		testDrink("s5", "cocktail", []string{"all"}, []string{"sweet"}),
		testDrink("d1", "soju", []string{"all"}, []string{"dry"}),
	}

	out := FilterCandidates(drinks, "all", []string{"sweet"})
	require.Len(t, out, 5)
	for _, d := range out {
		assert.True(t, d.HasTaste("sweet"))
	}
}

func TestFilterTasteNarrowingAbandonedWhenTooFew(t *testing.T) {
	// 只有 2 支 sweet：縮小後 < 5，放棄縮小保留全部
	drinks := []catalog.Drink{
		testDrink("s1", "wine", []string{"all"}, []string{"sweet"}),
		testDrink("s2", "wine", []string{"all"}, []string{"sweet"}),
		testDrink("d1", "soju", []string{"all"}, []string{"dry"}),
		testDrink("d2", "beer", []string{"all"}, []string{"refreshing"}),
	}

	out := FilterCandidates(drinks, "all", []string{"sweet"})
	assert.Len(t, out, 4, "口味是軟性偏好，不該把候選池縮到太小")
}

func TestFilterKeepsWildcardDrinksForUnknownOccasion(t *testing.T) {
	// 沒有酒款標注這個場合時，萬用場合酒款仍然存活
	drinks := []catalog.Drink{
		testDrink("b1", "whisky", []string{"business"}, nil),
		testDrink("w1", "highball", []string{"all"}, nil),
		testDrink("w2", "beer", []string{"all"}, nil),
		testDrink("w3", "wine", []string{"all"}, nil),
		testDrink("p1", "soju", []string{"party"}, nil),
	}

	out := FilterCandidates(drinks, "camping", nil)
	require.Len(t, out, 3)
	for _, d := range out {
		assert.True(t, d.HasWildcardOccasion())
	}
}

func TestFilterRelaxesToFullCatalog(t *testing.T) {
	// 萬用場合酒款也不足 3 支時退回整個目錄
	drinks := []catalog.Drink{
		testDrink("p1", "soju", []string{"party"}, nil),
		testDrink("p2", "beer", []string{"party"}, nil),
		testDrink("w1", "highball", []string{"all"}, nil),
	}

	out := FilterCandidates(drinks, "camping", nil)
	assert.Len(t, out, 3, "最後防線是整個目錄")
}
