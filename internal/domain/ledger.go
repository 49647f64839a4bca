package domain

import "time"

type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountFrozen AccountStatus = "FROZEN"
	AccountExpired AccountStatus = "EXPIRED"
	AccountClosed AccountStatus = "CLOSED"
)

// LedgerAccount holds a customer's point balance counters. One per customer.
// PointsAdjusted accumulates the absolute value of every adjustment; the
// signed delta is applied to CurrentBalance, so
// CurrentBalance == PointsEarned + net adjustments - PointsRedeemed - PointsExpired
// after every mutation.
type LedgerAccount struct {
	ID                   int64         `db:"id"`
	CustomerID           int64         `db:"customer_id"`
	PointsEarned         int64         `db:"points_earned"`
	PointsRedeemed       int64         `db:"points_redeemed"`
	PointsExpired        int64         `db:"points_expired"`
	PointsAdjusted       int64         `db:"points_adjusted"`
	CurrentBalance       int64         `db:"current_balance"`
	LifetimePoints       int64         `db:"lifetime_points"`
	Status               AccountStatus `db:"status"`
	LastEarnedDate       *time.Time    `db:"last_earned_date"`
	LastRedeemedDate     *time.Time    `db:"last_redeemed_date"`
	LastAdjustedDate     *time.Time    `db:"last_adjusted_date"`
	PointsExpirationDate *time.Time    `db:"points_expiration_date"`
	CreatedAt            time.Time     `db:"created_at"`
	UpdatedAt            time.Time     `db:"updated_at"`
}

// AvailableBalance is CurrentBalance minus PointsExpired. ExpirePoints already
// subtracts the expired amount from CurrentBalance, so expired points count
// twice here. Kept as-is pending product clarification; the tests pin it.
func (a *LedgerAccount) AvailableBalance() int64 {
	return a.CurrentBalance - a.PointsExpired
}

// AddPoints credits earned points. Non-positive amounts are ignored.
func (a *LedgerAccount) AddPoints(points int64, now time.Time) {
	if points <= 0 {
		return
	}
	a.PointsEarned += points
	a.CurrentBalance += points
	a.LifetimePoints += points
	a.LastEarnedDate = &now
}

// RedeemPoints debits the balance. The caller is responsible for rejecting
// debits above CurrentBalance; the guard here only keeps the counters sane.
func (a *LedgerAccount) RedeemPoints(points int64, now time.Time) {
	if points <= 0 || a.CurrentBalance < points {
		return
	}
	a.PointsRedeemed += points
	a.CurrentBalance -= points
	a.LastRedeemedDate = &now
}

// AdjustPoints applies a signed correction. PointsAdjusted tracks the
// magnitude regardless of sign.
func (a *LedgerAccount) AdjustPoints(delta int64, now time.Time) {
	if delta < 0 {
		a.PointsAdjusted += -delta
	} else {
		a.PointsAdjusted += delta
	}
	a.CurrentBalance += delta
	a.LastAdjustedDate = &now
}

// ExpirePoints retires points. Silent no-op unless the available balance
// covers the amount.
func (a *LedgerAccount) ExpirePoints(points int64) {
	if points <= 0 || a.CurrentBalance-a.PointsExpired < points {
		return
	}
	a.PointsExpired += points
	a.CurrentBalance -= points
}
