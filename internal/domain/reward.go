package domain

import "time"

type RewardStatus string

const (
	RewardActive     RewardStatus = "ACTIVE"
	RewardPaused     RewardStatus = "PAUSED"
	RewardInactive   RewardStatus = "INACTIVE"
	RewardExpired    RewardStatus = "EXPIRED"
	RewardOutOfStock RewardStatus = "OUT_OF_STOCK"
	RewardArchived   RewardStatus = "ARCHIVED"
)

// Reward is a catalog item redeemable for points. Quantity 0 means unlimited
// stock.
type Reward struct {
	ID               int64        `db:"id"`
	Name             string       `db:"name"`
	Description      string       `db:"description"`
	RewardCode       string       `db:"reward_code"`
	PointsRequired   int64        `db:"points_required"`
	Quantity         int64        `db:"quantity"`
	QuantityRedeemed int64        `db:"quantity_redeemed"`
	Status           RewardStatus `db:"status"`
	StartDate        *time.Time   `db:"start_date"`
	ExpiryDate       *time.Time   `db:"expiry_date"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

// IsAvailable reports whether the reward can currently be redeemed.
func (r *Reward) IsAvailable(now time.Time) bool {
	if r.Status != RewardActive {
		return false
	}
	if r.Quantity > 0 && r.QuantityRedeemed >= r.Quantity {
		return false
	}
	if r.StartDate != nil && now.Before(*r.StartDate) {
		return false
	}
	if r.ExpiryDate != nil && now.After(*r.ExpiryDate) {
		return false
	}
	return true
}

// RemainingQuantity returns the stock left, or -1 for unlimited rewards.
func (r *Reward) RemainingQuantity() int64 {
	if r.Quantity == 0 {
		return -1
	}
	return r.Quantity - r.QuantityRedeemed
}
