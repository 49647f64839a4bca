package dto

import "time"

type CreatePromotionRequestDTO struct {
	Name                    string   `json:"name" validate:"required,max=150" example:"Summer double points"`
	Description             string   `json:"description" validate:"omitempty,max=500"`
	PromotionCode           string   `json:"promotion_code" validate:"omitempty,max=50" example:"PROMO-SUMMER"`
	PromotionType           string   `json:"promotion_type" validate:"omitempty,max=50" example:"SEASONAL"`
	StartDate               *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2024-06-01"`
	EndDate                 *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2024-08-31"`
	BonusPointsMultiplier   *float64 `json:"bonus_points_multiplier" validate:"omitempty,gt=0" example:"2.0"`
	BonusPointsFixed        *int64   `json:"bonus_points_fixed" validate:"omitempty,gte=0" example:"50"`
	MinimumPurchaseAmount   *float64 `json:"minimum_purchase_amount" validate:"omitempty,gte=0" example:"25"`
	UsageLimit              int64    `json:"usage_limit" validate:"gte=0" example:"1000"`
	UsageLimitPerCustomer   int64    `json:"usage_limit_per_customer" validate:"gte=0" example:"1"`
	MinimumTier             *string  `json:"minimum_tier" validate:"omitempty,oneof=BRONZE SILVER GOLD PLATINUM DIAMOND" example:"SILVER"`
	MinimumAge              *int     `json:"minimum_age" validate:"omitempty,gte=0" example:"18"`
	MaximumAge              *int     `json:"maximum_age" validate:"omitempty,gte=0" example:"35"`
	TargetGender            *string  `json:"target_gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	TargetCity              *string  `json:"target_city" validate:"omitempty,max=100"`
	TargetState             *string  `json:"target_state" validate:"omitempty,max=100"`
	ExclusiveToNewCustomers bool     `json:"exclusive_to_new_customers"`
}

type PromotionResponseDTO struct {
	ID                    int64      `json:"id" example:"7"`
	PromotionCode         string     `json:"promotion_code" example:"PROMO-SUMMER"`
	Name                  string     `json:"name" example:"Summer double points"`
	Status                string     `json:"status" example:"ACTIVE"`
	StartDate             *time.Time `json:"start_date,omitempty"`
	EndDate               *time.Time `json:"end_date,omitempty"`
	BonusPointsMultiplier *float64   `json:"bonus_points_multiplier,omitempty" example:"2.0"`
	BonusPointsFixed      *int64     `json:"bonus_points_fixed,omitempty" example:"50"`
	UsageCount            int64      `json:"usage_count" example:"12"`
	UsageLimit            int64      `json:"usage_limit" example:"1000"`
}

type UpdatePromotionStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SCHEDULED ACTIVE PAUSED EXPIRED CANCELLED" example:"ACTIVE"`
}
