package domain

import "time"

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionCancelled TransactionStatus = "CANCELLED"
	TransactionRefunded  TransactionStatus = "REFUNDED"
	TransactionVoided    TransactionStatus = "VOIDED"
)

// Transaction is a purchase event and the points-calculation audit for it.
// AppliedPromotionID records which promotion (if any) contributed to
// PointsEarned.
type Transaction struct {
	ID                 int64             `db:"id"`
	TransactionCode    string            `db:"transaction_code"`
	CustomerID         int64             `db:"customer_id"`
	Amount             float64           `db:"amount"`
	DiscountApplied    float64           `db:"discount_applied"`
	NetAmount          float64           `db:"net_amount"`
	PointsEarned       int64             `db:"points_earned"`
	AppliedPromotionID *int64            `db:"applied_promotion_id"`
	Status             TransactionStatus `db:"status"`
	StoreCode          string            `db:"store_code"`
	TransactionDate    time.Time         `db:"transaction_date"`
	CreatedAt          time.Time         `db:"created_at"`
}
