package domain

import "time"

type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "PENDING"
	RedemptionCompleted RedemptionStatus = "COMPLETED"
	RedemptionUsed      RedemptionStatus = "USED"
	RedemptionExpired   RedemptionStatus = "EXPIRED"
	RedemptionCancelled RedemptionStatus = "CANCELLED"
	RedemptionRefunded  RedemptionStatus = "REFUNDED"
)

type RedemptionChannel string

const (
	ChannelOnline    RedemptionChannel = "ONLINE"
	ChannelInStore   RedemptionChannel = "IN_STORE"
	ChannelMobileApp RedemptionChannel = "MOBILE_APP"
	ChannelPhone     RedemptionChannel = "PHONE"
	ChannelKiosk     RedemptionChannel = "KIOSK"
)

var AllRedemptionStatuses = []RedemptionStatus{
	RedemptionPending, RedemptionCompleted, RedemptionUsed,
	RedemptionExpired, RedemptionCancelled, RedemptionRefunded,
}

var AllRedemptionChannels = []RedemptionChannel{
	ChannelOnline, ChannelInStore, ChannelMobileApp, ChannelPhone, ChannelKiosk,
}

// RedemptionLog records one redemption attempt. PointsRedeemed is frozen at
// redemption time; later reward price changes do not touch it. Records are
// append-only, only status fields mutate.
type RedemptionLog struct {
	ID                 int64             `db:"id"`
	RedemptionCode     string            `db:"redemption_code"`
	VoucherCode        string            `db:"voucher_code"`
	CustomerID         int64             `db:"customer_id"`
	RewardID           int64             `db:"reward_id"`
	PointsRedeemed     int64             `db:"points_redeemed"`
	Status             RedemptionStatus  `db:"status"`
	Channel            RedemptionChannel `db:"channel"`
	RedemptionDate     time.Time         `db:"redemption_date"`
	ExpiryDate         *time.Time        `db:"expiry_date"`
	UsedDate           *time.Time        `db:"used_date"`
	CancellationReason *string           `db:"cancellation_reason"`
	Notes              *string           `db:"notes"`
	CreatedAt          time.Time         `db:"created_at"`
	UpdatedAt          time.Time         `db:"updated_at"`
}

// IsExpired is evaluated lazily: a record can be logically expired while its
// persisted status still reads COMPLETED.
func (l *RedemptionLog) IsExpired(now time.Time) bool {
	return l.ExpiryDate != nil && now.After(*l.ExpiryDate)
}

// IsValidForUse reports whether the voucher can still be used.
func (l *RedemptionLog) IsValidForUse(now time.Time) bool {
	return l.Status == RedemptionCompleted && !l.IsExpired(now) && l.UsedDate == nil
}

func (l *RedemptionLog) MarkUsed(now time.Time) {
	l.UsedDate = &now
	l.Status = RedemptionUsed
}

func (l *RedemptionLog) Cancel(reason string) {
	l.Status = RedemptionCancelled
	l.CancellationReason = &reason
}
