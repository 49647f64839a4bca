package dto

import "time"

type RecordPurchaseRequestDTO struct {
	CustomerID int64   `json:"customer_id" validate:"required,gt=0" example:"42"`
	Amount     float64 `json:"amount" validate:"required,gt=0" example:"120.50"`
	Discount   float64 `json:"discount" validate:"gte=0" example:"20.50"`
	StoreCode  string  `json:"store_code" validate:"omitempty,max=50" example:"STORE-01"`
}

type TransactionResponseDTO struct {
	ID                 int64     `json:"id" example:"101"`
	TransactionCode    string    `json:"transaction_code" example:"TXN-5B0C22E9"`
	CustomerID         int64     `json:"customer_id" example:"42"`
	Amount             float64   `json:"amount" example:"120.50"`
	DiscountApplied    float64   `json:"discount_applied" example:"20.50"`
	NetAmount          float64   `json:"net_amount" example:"100"`
	PointsEarned       int64     `json:"points_earned" example:"1000"`
	AppliedPromotionID *int64    `json:"applied_promotion_id,omitempty" example:"7"`
	Status             string    `json:"status" example:"COMPLETED"`
	StoreCode          string    `json:"store_code" example:"STORE-01"`
	TransactionDate    time.Time `json:"transaction_date"`
}
