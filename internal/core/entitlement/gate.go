package entitlement

import (
	"context"

	"drink-recommender/internal/pkg/common"

	"go.uber.org/zap"
)

// Membership 會員等級
type Membership string

const (
	MembershipPremium Membership = "premium"
	MembershipFree    Membership = "free"
)

// Ledger 用量帳本：會員等級、點數與每日配額都存在外部持久儲存，
// 供多個並發請求同時存取。
type Ledger interface {
	// GetMembership 查詢會員等級，查無資料視為 free
	GetMembership(ctx context.Context, userID string) (Membership, error)

	// DecrementCredit 原子扣一點；點數不足時回傳 false 且不扣
	DecrementCredit(ctx context.Context, userID string) (bool, error)

	// IncrementDailyCount 原子遞增今日（當地午夜起算）成功次數並回傳新值
	IncrementDailyCount(ctx context.Context, userID string) (int64, error)

	// ReleaseDailyCount 回補一次今日計數（配額拒絕時還原）
	ReleaseDailyCount(ctx context.Context, userID string) error
}

// Gate 權益閘門，先於任何推薦工作執行。
// 判斷順序：PREMIUM 無條件放行 → 有點數就原子扣一點放行 →
// FREE 會員受每日配額限制。匿名請求由客戶端自行節制，伺服器不擋。
type Gate struct {
	ledger         Ledger
	freeDailyLimit int
}

// NewGate 建立權益閘門
func NewGate(ledger Ledger, freeDailyLimit int) *Gate {
	if freeDailyLimit <= 0 {
		freeDailyLimit = 1
	}
	return &Gate{ledger: ledger, freeDailyLimit: freeDailyLimit}
}

// Authorize 授權這次推薦呼叫。拒絕時回傳 common.ErrQuotaExceeded
// 或 common.ErrNoCredits，呼叫端原樣回傳給用戶。
func (g *Gate) Authorize(ctx context.Context, userID string) error {
	// 匿名請求：伺服器端不做配額（由客戶端本地狀態節制）
	if userID == "" {
		return nil
	}

	membership, err := g.ledger.GetMembership(ctx, userID)
	if err != nil {
		return err
	}

	if membership == MembershipPremium {
		common.LogDebug("權益檢查：PREMIUM 放行",
			zap.String("user_id", userID),
		)
		return nil
	}

	// 點數優先於每日配額，原子扣抵避免並發重複消費
	consumed, err := g.ledger.DecrementCredit(ctx, userID)
	if err != nil {
		return err
	}
	if consumed {
		common.LogDebug("權益檢查：扣點放行",
			zap.String("user_id", userID),
		)
		return nil
	}

	// 每日配額只適用 FREE 會員；其他等級沒點數就直接拒絕
	if membership != MembershipFree {
		return common.ErrNoCredits
	}

	// FREE：每日配額，用原子遞增取代先查後寫，並發下不會超發
	count, err := g.ledger.IncrementDailyCount(ctx, userID)
	if err != nil {
		return err
	}
	if count > int64(g.freeDailyLimit) {
		// 回補計數，讓計數停在配額上限
		if rerr := g.ledger.ReleaseDailyCount(ctx, userID); rerr != nil {
			common.LogWarn("配額計數回補失敗",
				zap.Error(rerr),
				zap.String("user_id", userID),
			)
		}
		common.LogInfo("權益檢查：今日配額已用完",
			zap.String("user_id", userID),
			zap.Int64("今日次數", count-1),
		)
		return common.ErrQuotaExceeded
	}

	common.LogDebug("權益檢查：每日配額放行",
		zap.String("user_id", userID),
		zap.Int64("今日次數", count),
	)
	return nil
}
