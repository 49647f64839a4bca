package dto

type BalanceResponseDTO struct {
	CustomerID       int64 `json:"customer_id" example:"42"`
	CurrentBalance   int64 `json:"current_balance" example:"1500"`
	AvailableBalance int64 `json:"available_balance" example:"1470"`
	LifetimePoints   int64 `json:"lifetime_points" example:"5200"`
	PointsEarned     int64 `json:"points_earned" example:"5000"`
	PointsRedeemed   int64 `json:"points_redeemed" example:"3400"`
	PointsExpired    int64 `json:"points_expired" example:"30"`
	PointsAdjusted   int64 `json:"points_adjusted" example:"130"`
}

type PointsAmountRequestDTO struct {
	Points int64 `json:"points" validate:"required,gt=0" example:"500"`
}

type PointsAdjustRequestDTO struct {
	Delta  int64  `json:"delta" validate:"required" example:"-40"`
	Reason string `json:"reason" validate:"omitempty,max=255" example:"support correction"`
}
