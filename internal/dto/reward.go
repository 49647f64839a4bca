package dto

type CreateRewardRequestDTO struct {
	Name           string  `json:"name" validate:"required,max=150" example:"Free coffee"`
	Description    string  `json:"description" validate:"omitempty,max=500"`
	RewardCode     string  `json:"reward_code" validate:"omitempty,max=50" example:"RWD-COFFEE"`
	PointsRequired int64   `json:"points_required" validate:"required,gt=0" example:"500"`
	Quantity       int64   `json:"quantity" validate:"gte=0" example:"100"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate     *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

type RewardResponseDTO struct {
	ID                int64  `json:"id" example:"3"`
	RewardCode        string `json:"reward_code" example:"RWD-COFFEE"`
	Name              string `json:"name" example:"Free coffee"`
	PointsRequired    int64  `json:"points_required" example:"500"`
	RemainingQuantity int64  `json:"remaining_quantity" example:"88"`
	Status            string `json:"status" example:"ACTIVE"`
}

type UpdateRewardStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE PAUSED INACTIVE EXPIRED OUT_OF_STOCK ARCHIVED" example:"PAUSED"`
}
