package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lipagate/lipagate/internal/domain/subscription/valueobjects"
)

// --- helpers ---

func newActiveSubscription(t *testing.T, periodStart, periodEnd time.Time) *Subscription {
	t.Helper()
	sub, err := NewSubscription(1, "+211900000001", 10, periodStart, periodEnd)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

// reconstruct builds a subscription in an arbitrary status. Watermarks and
// expiry stamps can be set afterwards through the params.
func reconstruct(t *testing.T, p ReconstructParams) *Subscription {
	t.Helper()
	if p.ID == 0 {
		p.ID = 1
	}
	if p.SID == "" {
		p.SID = "sub_test0001"
	}
	if p.CustomerPhone == "" {
		p.CustomerPhone = "+211900000001"
	}
	if p.MerchantID == 0 {
		p.MerchantID = 1
	}
	if p.ProductID == 0 {
		p.ProductID = 10
	}
	sub, err := Reconstruct(p)
	require.NoError(t, err)
	return sub
}

func TestNewSubscription_ValidInput(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(0, 1, 0)

	sub, err := NewSubscription(1, "+211900000001", 10, start, end)

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.NotEmpty(t, sub.SID())
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, start, sub.CurrentPeriodStart())
	assert.Equal(t, end, sub.CurrentPeriodEnd())
}

func TestNewSubscription_InvalidInput(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(0, 1, 0)

	tests := []struct {
		name       string
		merchantID uint
		phone      string
		productID  uint
		start, end time.Time
	}{
		{"missing merchant", 0, "+211900000001", 10, start, end},
		{"missing phone", 1, "", 10, start, end},
		{"missing product", 1, "+211900000001", 0, start, end},
		{"period end before start", 1, "+211900000001", 10, end, start},
		{"zero length period", 1, "+211900000001", 10, start, start},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewSubscription(tt.merchantID, tt.phone, tt.productID, tt.start, tt.end)
			assert.Error(t, err)
			assert.Nil(t, sub)
		})
	}
}

func TestIsEntitling(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		status    vo.SubscriptionStatus
		periodEnd time.Time
		want      bool
	}{
		{"active within period", vo.StatusActive, now.Add(time.Hour), true},
		{"active at exact period end", vo.StatusActive, now, true},
		{"active past period end", vo.StatusActive, now.Add(-time.Second), false},
		{"trialing within period", vo.StatusTrialing, now.Add(time.Hour), true},
		{"past_due within grace does not entitle", vo.StatusPastDue, now.Add(-time.Hour), false},
		{"past_due with future period end", vo.StatusPastDue, now.Add(time.Hour), false},
		{"expired", vo.StatusExpired, now.Add(-time.Hour), false},
		{"cancelled", vo.StatusCancelled, now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := reconstruct(t, ReconstructParams{
				Status:             tt.status,
				CurrentPeriodStart: tt.periodEnd.AddDate(0, -1, 0),
				CurrentPeriodEnd:   tt.periodEnd,
			})
			assert.Equal(t, tt.want, sub.IsEntitling(now))
		})
	}
}

func TestGraceWindow_Boundaries(t *testing.T) {
	now := time.Now().UTC()
	periodEnd := now.Add(-time.Hour)
	sub := reconstruct(t, ReconstructParams{
		Status:             vo.StatusActive,
		CurrentPeriodStart: periodEnd.AddDate(0, -1, 0),
		CurrentPeriodEnd:   periodEnd,
	})

	deadline := sub.GraceDeadline()
	assert.Equal(t, periodEnd.Add(GracePeriod), deadline)

	// Lapsed but inside grace: past_due, not expired.
	assert.True(t, sub.ShouldMarkPastDue(now))
	assert.False(t, sub.ShouldMarkExpired(now))

	// One instant before the deadline still belongs to the grace window.
	justBefore := deadline.Add(-time.Nanosecond)
	assert.True(t, sub.ShouldMarkPastDue(justBefore))
	assert.False(t, sub.ShouldMarkExpired(justBefore))

	// The deadline instant itself is expired, not past_due.
	assert.False(t, sub.ShouldMarkPastDue(deadline))
	assert.True(t, sub.ShouldMarkExpired(deadline))

	assert.True(t, sub.ShouldMarkExpired(deadline.Add(time.Hour)))
}

func TestShouldMarkExpired_FromPastDue(t *testing.T) {
	now := time.Now().UTC()
	periodEnd := now.Add(-GracePeriod - time.Hour)
	sub := reconstruct(t, ReconstructParams{
		Status:             vo.StatusPastDue,
		CurrentPeriodStart: periodEnd.AddDate(0, -1, 0),
		CurrentPeriodEnd:   periodEnd,
	})

	assert.True(t, sub.ShouldMarkExpired(now))
	require.NoError(t, sub.MarkExpired(now))
	assert.Equal(t, vo.StatusExpired, sub.Status())
	require.NotNil(t, sub.ExpiredAt())
	assert.WithinDuration(t, now, *sub.ExpiredAt(), time.Second)
}

func TestMarkPastDue_InvalidFromTerminal(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{
		Status:             vo.StatusExpired,
		CurrentPeriodStart: time.Now().AddDate(0, -2, 0),
		CurrentPeriodEnd:   time.Now().AddDate(0, -1, 0),
	})
	assert.Error(t, sub.MarkPastDue())
}

func TestCancel(t *testing.T) {
	now := time.Now().UTC()
	sub := newActiveSubscription(t, now, now.AddDate(0, 1, 0))

	require.NoError(t, sub.Cancel("customer request"))
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	require.NotNil(t, sub.CancelledAt())
	require.NotNil(t, sub.CancelReason())
	assert.Equal(t, "customer request", *sub.CancelReason())

	// Terminal: no second cancel, no renewal.
	assert.Error(t, sub.Cancel("again"))
	assert.Error(t, sub.Renew(now, now.AddDate(0, 1, 0)))
}

func TestRenew_OutOfExpired(t *testing.T) {
	now := time.Now().UTC()
	expiredAt := now.Add(-time.Hour)
	notified := now.Add(-30 * time.Minute)
	sub := reconstruct(t, ReconstructParams{
		Status:             vo.StatusExpired,
		CurrentPeriodStart: now.AddDate(0, -2, 0),
		CurrentPeriodEnd:   now.AddDate(0, -1, 0),
		ExpiredAt:          &expiredAt,
		NotifiedExpiringAt: &notified,
		NotifiedExpiredAt:  &notified,
	})

	require.NoError(t, sub.Renew(now, now.AddDate(0, 1, 0)))

	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Nil(t, sub.ExpiredAt())
	// Watermarks re-arm so the new period gets its own notifications.
	assert.Nil(t, sub.NotifiedExpiringAt())
	assert.Nil(t, sub.NotifiedExpiredAt())
	assert.True(t, sub.IsEntitling(now))
}

func TestNeedsExpiryReminder(t *testing.T) {
	now := time.Now().UTC()
	window := 72 * time.Hour

	t.Run("inside window, never notified", func(t *testing.T) {
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusActive,
			CurrentPeriodStart: now.AddDate(0, -1, 0),
			CurrentPeriodEnd:   now.Add(24 * time.Hour),
		})
		assert.True(t, sub.NeedsExpiryReminder(now, window))
	})

	t.Run("outside window", func(t *testing.T) {
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusActive,
			CurrentPeriodStart: now.AddDate(0, -1, 0),
			CurrentPeriodEnd:   now.Add(window + time.Hour),
		})
		assert.False(t, sub.NeedsExpiryReminder(now, window))
	})

	t.Run("already notified this period", func(t *testing.T) {
		periodStart := now.AddDate(0, -1, 0)
		notified := now.Add(-time.Hour)
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusActive,
			CurrentPeriodStart: periodStart,
			CurrentPeriodEnd:   now.Add(24 * time.Hour),
			NotifiedExpiringAt: &notified,
		})
		assert.False(t, sub.NeedsExpiryReminder(now, window))
	})

	t.Run("notified in a previous period", func(t *testing.T) {
		periodStart := now.AddDate(0, -1, 0)
		// Watermark predates the current period start, so it belongs to
		// the last billing cycle and must not suppress this one.
		notified := periodStart.Add(-time.Hour)
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusActive,
			CurrentPeriodStart: periodStart,
			CurrentPeriodEnd:   now.Add(24 * time.Hour),
			NotifiedExpiringAt: &notified,
		})
		assert.True(t, sub.NeedsExpiryReminder(now, window))
	})

	t.Run("watermark survives repeat marking", func(t *testing.T) {
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusActive,
			CurrentPeriodStart: now.AddDate(0, -1, 0),
			CurrentPeriodEnd:   now.Add(24 * time.Hour),
		})
		require.True(t, sub.NeedsExpiryReminder(now, window))
		sub.MarkExpiryReminderSent(now)
		assert.False(t, sub.NeedsExpiryReminder(now, window))
		assert.False(t, sub.NeedsExpiryReminder(now.Add(time.Hour), window))
	})
}

func TestNeedsExpiredNotice(t *testing.T) {
	now := time.Now().UTC()
	lookback := 48 * time.Hour

	t.Run("recently expired, never notified", func(t *testing.T) {
		expiredAt := now.Add(-time.Hour)
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusExpired,
			CurrentPeriodStart: now.AddDate(0, -2, 0),
			CurrentPeriodEnd:   now.AddDate(0, -1, 0),
			ExpiredAt:          &expiredAt,
		})
		assert.True(t, sub.NeedsExpiredNotice(now, lookback))
	})

	t.Run("expired before lookback", func(t *testing.T) {
		expiredAt := now.Add(-lookback - time.Hour)
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusExpired,
			CurrentPeriodStart: now.AddDate(0, -2, 0),
			CurrentPeriodEnd:   now.AddDate(0, -1, 0),
			ExpiredAt:          &expiredAt,
		})
		assert.False(t, sub.NeedsExpiredNotice(now, lookback))
	})

	t.Run("already notified", func(t *testing.T) {
		expiredAt := now.Add(-time.Hour)
		notified := now.Add(-30 * time.Minute)
		sub := reconstruct(t, ReconstructParams{
			Status:             vo.StatusExpired,
			CurrentPeriodStart: now.AddDate(0, -2, 0),
			CurrentPeriodEnd:   now.AddDate(0, -1, 0),
			ExpiredAt:          &expiredAt,
			NotifiedExpiredAt:  &notified,
		})
		assert.False(t, sub.NeedsExpiredNotice(now, lookback))
	})
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, vo.StatusActive.CanTransitionTo(vo.StatusPastDue))
	assert.True(t, vo.StatusPastDue.CanTransitionTo(vo.StatusActive))
	assert.True(t, vo.StatusPastDue.CanTransitionTo(vo.StatusExpired))
	assert.True(t, vo.StatusExpired.CanTransitionTo(vo.StatusActive))
	assert.False(t, vo.StatusCancelled.CanTransitionTo(vo.StatusActive))
	assert.False(t, vo.StatusExpired.CanTransitionTo(vo.StatusPastDue))
}

func TestSetID(t *testing.T) {
	now := time.Now().UTC()
	sub := newActiveSubscription(t, now, now.AddDate(0, 1, 0))

	require.NoError(t, sub.SetID(42))
	assert.Equal(t, uint(42), sub.ID())
	assert.Error(t, sub.SetID(43))
	assert.Error(t, sub.SetID(0))
}
