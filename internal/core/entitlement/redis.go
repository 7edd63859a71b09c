package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	userKeyPrefix  = "user:"      // hash：membership / credits
	quotaKeyPrefix = "rec:quota:" // 每日成功次數，rec:quota:<user>:<yyyy-mm-dd>
)

// RedisLedger Redis 實作的用量帳本。
// 點數扣抵與每日計數都用原子操作，避免先查後寫在並發下超發。
type RedisLedger struct {
	client *redis.Client
	loc    *time.Location
}

// NewRedisLedger 建立帳本；loc 決定「當地午夜」的時區，nil 用系統時區
func NewRedisLedger(client *redis.Client, loc *time.Location) *RedisLedger {
	if loc == nil {
		loc = time.Local
	}
	return &RedisLedger{client: client, loc: loc}
}

// GetMembership 查詢會員等級，查無資料視為 free
func (l *RedisLedger) GetMembership(ctx context.Context, userID string) (Membership, error) {
	val, err := l.client.HGet(ctx, userKeyPrefix+userID, "membership").Result()
	if err != nil {
		if err == redis.Nil {
			return MembershipFree, nil
		}
		return "", fmt.Errorf("failed to get membership: %w", err)
	}
	if val == string(MembershipPremium) {
		return MembershipPremium, nil
	}
	return MembershipFree, nil
}

// DecrementCredit 原子扣一點。扣到負數代表本來就沒點數，補回並回報失敗。
func (l *RedisLedger) DecrementCredit(ctx context.Context, userID string) (bool, error) {
	remaining, err := l.client.HIncrBy(ctx, userKeyPrefix+userID, "credits", -1).Result()
	if err != nil {
		return false, fmt.Errorf("failed to decrement credit: %w", err)
	}
	if remaining < 0 {
		if _, err := l.client.HIncrBy(ctx, userKeyPrefix+userID, "credits", 1).Result(); err != nil {
			return false, fmt.Errorf("failed to restore credit: %w", err)
		}
		return false, nil
	}
	return true, nil
}

// IncrementDailyCount 原子遞增今日計數並回傳新值。
// 鍵以當地日期命名，到期時間抓兩天，跨午夜自然換新鍵。
func (l *RedisLedger) IncrementDailyCount(ctx context.Context, userID string) (int64, error) {
	key := l.quotaKey(userID)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment daily count: %w", err)
	}
	if count == 1 {
		_ = l.client.Expire(ctx, key, 48*time.Hour).Err()
	}
	return count, nil
}

// ReleaseDailyCount 回補一次今日計數
func (l *RedisLedger) ReleaseDailyCount(ctx context.Context, userID string) error {
	if err := l.client.Decr(ctx, l.quotaKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to release daily count: %w", err)
	}
	return nil
}

// quotaKey 以當地日期組出配額鍵
func (l *RedisLedger) quotaKey(userID string) string {
	today := time.Now().In(l.loc).Format("2006-01-02")
	return quotaKeyPrefix + userID + ":" + today
}
