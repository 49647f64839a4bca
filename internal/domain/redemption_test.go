package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedemptionLog_IsValidForUse(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	used := now.Add(-time.Hour)

	tests := []struct {
		name  string
		log   RedemptionLog
		valid bool
	}{
		{name: "Completed and fresh", log: RedemptionLog{Status: RedemptionCompleted}, valid: true},
		{name: "Pending is not usable", log: RedemptionLog{Status: RedemptionPending}, valid: false},
		{name: "Cancelled is not usable", log: RedemptionLog{Status: RedemptionCancelled}, valid: false},
		{name: "Used once stays used", log: RedemptionLog{Status: RedemptionCompleted, UsedDate: &used}, valid: false},
		{
			name:  "Past expiry while status still reads COMPLETED",
			log:   RedemptionLog{Status: RedemptionCompleted, ExpiryDate: timePtr(now.Add(-time.Minute))},
			valid: false,
		},
		{
			name:  "Expiry in the future",
			log:   RedemptionLog{Status: RedemptionCompleted, ExpiryDate: timePtr(now.Add(time.Minute))},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.log.IsValidForUse(now))
		})
	}
}

func TestRedemptionLog_Transitions(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	log := RedemptionLog{Status: RedemptionCompleted}
	log.MarkUsed(now)
	assert.Equal(t, RedemptionUsed, log.Status)
	assert.Equal(t, now, *log.UsedDate)

	log = RedemptionLog{Status: RedemptionCompleted}
	log.Cancel("customer request")
	assert.Equal(t, RedemptionCancelled, log.Status)
	assert.Equal(t, "customer request", *log.CancellationReason)
}

func TestReward_IsAvailable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		reward    Reward
		available bool
	}{
		{name: "Active unlimited", reward: Reward{Status: RewardActive}, available: true},
		{name: "Paused", reward: Reward{Status: RewardPaused}, available: false},
		{name: "Stock left", reward: Reward{Status: RewardActive, Quantity: 10, QuantityRedeemed: 9}, available: true},
		{name: "Sold out", reward: Reward{Status: RewardActive, Quantity: 10, QuantityRedeemed: 10}, available: false},
		{name: "Zero quantity means unlimited", reward: Reward{Status: RewardActive, Quantity: 0, QuantityRedeemed: 500}, available: true},
		{name: "Before start", reward: Reward{Status: RewardActive, StartDate: timePtr(now.Add(time.Hour))}, available: false},
		{name: "After expiry", reward: Reward{Status: RewardActive, ExpiryDate: timePtr(now.Add(-time.Hour))}, available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.available, tt.reward.IsAvailable(now))
		})
	}
}
