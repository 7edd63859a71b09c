package pairing

import (
	"drink-recommender/internal/core/catalog"
	"drink-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// minTasteNarrowed 口味過濾後至少要留下的酒款數，否則放棄口味縮小
	minTasteNarrowed = 5
	// minCandidates 候選池下限，不足時逐步放寬條件
	minCandidates = 3
)

// FilterCandidates 依場合與口味縮小候選酒款。
// 口味是軟性偏好：縮小後不足 minTasteNarrowed 支就放棄縮小。
// 候選不足 minCandidates 支時逐步放寬：先退回萬用場合酒款，再退回
// 整個目錄，保證評分引擎永遠有 min(3, 目錄大小) 支候選。
func FilterCandidates(drinks []catalog.Drink, occasion string, tastes []string) []catalog.Drink {
	// 第一步：場合過濾（萬用場合請求不過濾）
	survivors := drinks
	if occasion != "" && occasion != catalog.OccasionAll {
		survivors = make([]catalog.Drink, 0, len(drinks))
		for _, d := range drinks {
			if d.HasOccasion(occasion) {
				survivors = append(survivors, d)
			}
		}
	}

	// 第二步：口味縮小，只有留下的夠多才採用
	if len(tastes) > 0 {
		narrowed := make([]catalog.Drink, 0, len(survivors))
		for _, d := range survivors {
			for _, t := range tastes {
				if d.HasTaste(t) {
					narrowed = append(narrowed, d)
					break
				}
			}
		}
		if len(narrowed) >= minTasteNarrowed {
			survivors = narrowed
		}
	}

	// 第三步：放寬保護
	if len(survivors) < minCandidates {
		common.LogDebug("候選酒款不足，放寬至萬用場合",
			zap.Int("候選數", len(survivors)),
			zap.String("場合", occasion),
		)
		wildcard := make([]catalog.Drink, 0, len(drinks))
		for _, d := range drinks {
			if d.HasWildcardOccasion() {
				wildcard = append(wildcard, d)
			}
		}
		survivors = wildcard

		if len(survivors) < minCandidates {
			common.LogDebug("萬用場合仍不足，退回整個目錄",
				zap.Int("候選數", len(survivors)),
			)
			survivors = drinks
		}
	}

	return survivors
}
