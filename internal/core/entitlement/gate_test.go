package entitlement

import (
	"context"
	"testing"

	"drink-recommender/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger 記憶體帳本，模擬原子操作
type fakeLedger struct {
	membership Membership
	credits    int
	dailyCount int64
	released   int
}

func (f *fakeLedger) GetMembership(ctx context.Context, userID string) (Membership, error) {
	if f.membership == "" {
		return MembershipFree, nil
	}
	return f.membership, nil
}

func (f *fakeLedger) DecrementCredit(ctx context.Context, userID string) (bool, error) {
	if f.credits > 0 {
		f.credits--
		return true, nil
	}
	return false, nil
}

func (f *fakeLedger) IncrementDailyCount(ctx context.Context, userID string) (int64, error) {
	f.dailyCount++
	return f.dailyCount, nil
}

func (f *fakeLedger) ReleaseDailyCount(ctx context.Context, userID string) error {
	f.dailyCount--
	f.released++
	return nil
}

func TestAuthorizeAnonymousPasses(t *testing.T) {
	gate := NewGate(&fakeLedger{}, 1)
	assert.NoError(t, gate.Authorize(context.Background(), ""))
}

func TestAuthorizePremiumUnlimited(t *testing.T) {
	ledger := &fakeLedger{membership: MembershipPremium}
	gate := NewGate(ledger, 1)

	for i := 0; i < 10; i++ {
		require.NoError(t, gate.Authorize(context.Background(), "vip"))
	}
	assert.Equal(t, int64(0), ledger.dailyCount, "PREMIUM 不應動到每日計數")
	assert.Equal(t, 0, ledger.credits)
}

func TestAuthorizeConsumesCreditFirst(t *testing.T) {
	ledger := &fakeLedger{membership: MembershipFree, credits: 2}
	gate := NewGate(ledger, 1)

	require.NoError(t, gate.Authorize(context.Background(), "u1"))
	require.NoError(t, gate.Authorize(context.Background(), "u1"))
	assert.Equal(t, 0, ledger.credits)
	assert.Equal(t, int64(0), ledger.dailyCount, "有點數時不該消耗每日配額")
}

func TestAuthorizeFreeDailyLimit(t *testing.T) {
	ledger := &fakeLedger{membership: MembershipFree}
	gate := NewGate(ledger, 1)

	require.NoError(t, gate.Authorize(context.Background(), "u1"), "第一次應放行")

	err := gate.Authorize(context.Background(), "u1")
	require.Error(t, err, "第二次應被配額拒絕")
	assert.Equal(t, common.ErrQuotaExceeded, err)
	assert.Equal(t, int64(1), ledger.dailyCount, "拒絕後計數應回補到配額上限")
	assert.Equal(t, 1, ledger.released)
}

func TestAuthorizeCreditsThenQuota(t *testing.T) {
	// 點數用完後退回每日配額
	ledger := &fakeLedger{membership: MembershipFree, credits: 1}
	gate := NewGate(ledger, 1)

	require.NoError(t, gate.Authorize(context.Background(), "u1")) // 扣點
	require.NoError(t, gate.Authorize(context.Background(), "u1")) // 配額第一次
	assert.Equal(t, common.ErrQuotaExceeded, gate.Authorize(context.Background(), "u1"))
}

func TestAuthorizeNonFreeWithoutCreditsRejected(t *testing.T) {
	ledger := &fakeLedger{membership: Membership("trial")}
	gate := NewGate(ledger, 1)

	err := gate.Authorize(context.Background(), "u1")
	assert.Equal(t, common.ErrNoCredits, err)
}
