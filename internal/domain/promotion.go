package domain

import (
	"strings"
	"time"
)

type PromotionStatus string

const (
	PromotionDraft     PromotionStatus = "DRAFT"
	PromotionScheduled PromotionStatus = "SCHEDULED"
	PromotionActive    PromotionStatus = "ACTIVE"
	PromotionPaused    PromotionStatus = "PAUSED"
	PromotionExpired   PromotionStatus = "EXPIRED"
	PromotionCancelled PromotionStatus = "CANCELLED"
)

// Promotion is a targeting rule plus a bonus effect. The bonus is an optional
// multiplier applied to base points and/or a fixed additive bonus.
type Promotion struct {
	ID                      int64           `db:"id"`
	Name                    string          `db:"name"`
	Description             string          `db:"description"`
	PromotionCode           string          `db:"promotion_code"`
	PromotionType           string          `db:"promotion_type"`
	Status                  PromotionStatus `db:"status"`
	StartDate               *time.Time      `db:"start_date"`
	EndDate                 *time.Time      `db:"end_date"`
	BonusPointsMultiplier   *float64        `db:"bonus_points_multiplier"`
	BonusPointsFixed        *int64          `db:"bonus_points_fixed"`
	MinimumPurchaseAmount   *float64        `db:"minimum_purchase_amount"`
	UsageLimit              int64           `db:"usage_limit"`
	UsageCount              int64           `db:"usage_count"`
	UsageLimitPerCustomer   int64           `db:"usage_limit_per_customer"`
	MinimumTier             *CustomerTier   `db:"minimum_tier"`
	MinimumAge              *int            `db:"minimum_age"`
	MaximumAge              *int            `db:"maximum_age"`
	TargetGender            *string         `db:"target_gender"`
	TargetCity              *string         `db:"target_city"`
	TargetState             *string         `db:"target_state"`
	ExclusiveToNewCustomers bool            `db:"exclusive_to_new_customers"`
	CreatedAt               time.Time       `db:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at"`
}

// IsValid reports whether the promotion can be applied at the given instant:
// status ACTIVE, inside the validity window, usage limit not exhausted
// (limit 0 means unlimited).
func (p *Promotion) IsValid(now time.Time) bool {
	if p.Status != PromotionActive {
		return false
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return false
	}
	if p.UsageLimit > 0 && p.UsageCount >= p.UsageLimit {
		return false
	}
	return true
}

// AppliesTo is the targeting predicate: every set criterion must hold.
// ExclusiveToNewCustomers currently admits nobody; the enrollment-recency
// check was never implemented upstream and the behavior is kept until product
// decides what "new" means.
func (p *Promotion) AppliesTo(c CustomerSnapshot, amount float64) bool {
	if p.MinimumPurchaseAmount != nil && amount < *p.MinimumPurchaseAmount {
		return false
	}
	if p.MinimumTier != nil && c.Tier.Rank() < p.MinimumTier.Rank() {
		return false
	}
	if p.MinimumAge != nil && c.Age < *p.MinimumAge {
		return false
	}
	if p.MaximumAge != nil && c.Age > *p.MaximumAge {
		return false
	}
	if p.TargetGender != nil && !strings.EqualFold(*p.TargetGender, c.Gender) {
		return false
	}
	if p.TargetCity != nil && !strings.EqualFold(*p.TargetCity, c.City) {
		return false
	}
	if p.TargetState != nil && !strings.EqualFold(*p.TargetState, c.State) {
		return false
	}
	if p.ExclusiveToNewCustomers {
		return false
	}
	return true
}
