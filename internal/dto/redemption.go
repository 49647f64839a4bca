package dto

import "time"

type RedeemRequestDTO struct {
	CustomerID int64   `json:"customer_id" validate:"required,gt=0" example:"42"`
	RewardID   int64   `json:"reward_id" validate:"required,gt=0" example:"3"`
	Channel    string  `json:"channel" validate:"omitempty,oneof=ONLINE IN_STORE MOBILE_APP PHONE KIOSK" example:"ONLINE"`
	Notes      *string `json:"notes" validate:"omitempty,max=500"`
}

type CancelRedemptionRequestDTO struct {
	Reason string `json:"reason" validate:"required,max=255" example:"customer request"`
}

type RedemptionResponseDTO struct {
	ID             int64      `json:"id" example:"15"`
	RedemptionCode string     `json:"redemption_code" example:"RDM-2C8A91D4"`
	VoucherCode    string     `json:"voucher_code" example:"VCH-7E01B3AF"`
	CustomerID     int64      `json:"customer_id" example:"42"`
	RewardID       int64      `json:"reward_id" example:"3"`
	PointsRedeemed int64      `json:"points_redeemed" example:"500"`
	Status         string     `json:"status" example:"COMPLETED"`
	Channel        string     `json:"channel" example:"ONLINE"`
	RedemptionDate time.Time  `json:"redemption_date"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	UsedDate       *time.Time `json:"used_date,omitempty"`
	IsExpired      bool       `json:"is_expired" example:"false"`
	IsValidForUse  bool       `json:"is_valid_for_use" example:"true"`
}
